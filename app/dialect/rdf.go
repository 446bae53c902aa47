package dialect

import (
	"cmp"
	"time"

	"github.com/antchfx/xmlquery"
)

// RDFHandler serves the RDF based dialects, RSS 1.0 and RSS 0.9. Items are
// siblings of <channel> under <rdf:RDF>; some producers nest them inside the
// channel instead, so both places are searched in document order.
type RDFHandler struct {
	entrySet

	kind    Kind
	ns      string
	channel *xmlquery.Node
	strict  bool
}

func NewRDF(kind Kind, root *xmlquery.Node, strict bool) (*RDFHandler, error) {
	h := &RDFHandler{kind: kind, strict: strict}
	switch kind {
	case RSS1:
		h.ns = NamespaceRSS1
	case RSS09:
		h.ns = NamespaceRSS09
	default:
		return nil, &ClassificationError{Root: root.Data, Namespace: root.NamespaceURI, Reason: "not an RDF dialect: " + kind.String()}
	}

	h.channel = childElement(root, "channel", h.ns)
	if h.channel == nil && strict {
		return nil, &StrictError{Kind: kind, Missing: "channel"}
	}

	var items []*xmlquery.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode || c.NamespaceURI != h.ns {
			continue
		}
		switch c.Data {
		case "item":
			items = append(items, c)
		case "channel":
			items = append(items, childElements(c, "item", h.ns)...)
		}
	}

	h.entrySet = newEntrySet(root, items, h.buildEntry)
	return h, nil
}

func (h *RDFHandler) Kind() Kind {
	return h.kind
}

func (h *RDFHandler) buildEntry(offset int, node *xmlquery.Node) (*Entry, error) {
	if h.strict {
		for _, name := range []string{"title", "link"} {
			if childElement(node, name, h.ns) == nil {
				return nil, missingField(name)
			}
		}
	}

	item, err := parseItem(h.kind, node)
	if err != nil {
		return nil, err
	}

	id := item.Link
	if h.kind == RSS1 {
		id = cmp.Or(attrValue(node, "about", NamespaceRDF, "rdf"), item.Link)
	}

	return &Entry{Item: item, ID: id, Offset: offset, Kind: h.kind, node: node}, nil
}

func (h *RDFHandler) Title() string {
	return childText(h.channel, "title", h.ns)
}

func (h *RDFHandler) Link() string {
	return childText(h.channel, "link", h.ns)
}

func (h *RDFHandler) Description() string {
	return childText(h.channel, "description", h.ns)
}

func (h *RDFHandler) Language() string {
	return canonicalLanguage(childText(h.channel, "language", NamespaceDC))
}

func (h *RDFHandler) Updated() *time.Time {
	return parseDate(childText(h.channel, "date", NamespaceDC))
}

func (h *RDFHandler) Authors() []string {
	if h.channel == nil {
		return nil
	}
	return texts(childElements(h.channel, "creator", NamespaceDC))
}

func (h *RDFHandler) Generator() string {
	if g := childElement(h.channel, "generatorAgent", NamespaceAdmin); g != nil {
		return attrValue(g, "resource", NamespaceRDF, "rdf")
	}
	return ""
}

func (h *RDFHandler) Value(name string) (string, bool) {
	return anyChildText(h.channel, name)
}
