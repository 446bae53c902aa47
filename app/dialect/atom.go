package dialect

import (
	"time"

	"github.com/antchfx/xmlquery"
)

// AtomHandler serves Atom 1.0 documents, and Atom 0.3 documents on a best
// effort basis.
type AtomHandler struct {
	entrySet

	feed   *xmlquery.Node
	ns     string
	strict bool
}

func NewAtom(root *xmlquery.Node, strict bool) *AtomHandler {
	h := &AtomHandler{
		feed:   root,
		ns:     root.NamespaceURI,
		strict: strict,
	}
	h.entrySet = newEntrySet(root, childElements(root, "entry", h.ns), h.buildEntry)
	return h
}

func (h *AtomHandler) Kind() Kind {
	return Atom
}

func (h *AtomHandler) buildEntry(offset int, node *xmlquery.Node) (*Entry, error) {
	id := childText(node, "id", h.ns)
	if h.strict && id == "" {
		return nil, missingField("id")
	}

	item, err := parseItem(Atom, node)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = item.GUID
	}

	return &Entry{Item: item, ID: id, Offset: offset, Kind: Atom, node: node}, nil
}

func (h *AtomHandler) Title() string {
	return childText(h.feed, "title", h.ns)
}

// Link prefers rel="alternate", which is also the default when rel is absent.
func (h *AtomHandler) Link() string {
	var fallback string
	for _, l := range childElements(h.feed, "link", h.ns) {
		href := attrValue(l, "href", "", "")
		rel := attrValue(l, "rel", "", "")
		if rel == "" || rel == "alternate" {
			return href
		}
		if fallback == "" {
			fallback = href
		}
	}
	return fallback
}

func (h *AtomHandler) Description() string {
	if s := childText(h.feed, "subtitle", h.ns); s != "" {
		return s
	}
	return childText(h.feed, "tagline", h.ns)
}

func (h *AtomHandler) Language() string {
	return canonicalLanguage(attrValue(h.feed, "lang", NamespaceXML, "xml"))
}

func (h *AtomHandler) Updated() *time.Time {
	if t := parseDate(childText(h.feed, "updated", h.ns)); t != nil {
		return t
	}
	return parseDate(childText(h.feed, "modified", h.ns))
}

func (h *AtomHandler) Authors() []string {
	var names []string
	for _, a := range childElements(h.feed, "author", h.ns) {
		if name := childText(a, "name", h.ns); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (h *AtomHandler) Generator() string {
	return childText(h.feed, "generator", h.ns)
}

func (h *AtomHandler) Value(name string) (string, bool) {
	return anyChildText(h.feed, name)
}
