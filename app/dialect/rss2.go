package dialect

import (
	"cmp"
	"time"

	"github.com/antchfx/xmlquery"
)

// RSS2Handler serves RSS 2.0 documents. Items live inside <channel>.
type RSS2Handler struct {
	entrySet

	channel *xmlquery.Node
	strict  bool
}

func NewRSS2(root *xmlquery.Node, strict bool) (*RSS2Handler, error) {
	channel := childElement(root, "channel", "")
	if channel == nil && strict {
		return nil, &StrictError{Kind: RSS2, Missing: "channel"}
	}

	h := &RSS2Handler{channel: channel, strict: strict}
	var items []*xmlquery.Node
	if channel != nil {
		items = childElements(channel, "item", "")
	}
	h.entrySet = newEntrySet(root, items, h.buildEntry)
	return h, nil
}

func (h *RSS2Handler) Kind() Kind {
	return RSS2
}

func (h *RSS2Handler) buildEntry(offset int, node *xmlquery.Node) (*Entry, error) {
	if h.strict && childElement(node, "title", "") == nil && childElement(node, "description", "") == nil {
		return nil, missingField("title", "description")
	}

	item, err := parseItem(RSS2, node)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Item:   item,
		ID:     cmp.Or(item.GUID, item.Link),
		Offset: offset,
		Kind:   RSS2,
		node:   node,
	}, nil
}

func (h *RSS2Handler) Title() string {
	return childText(h.channel, "title", "")
}

func (h *RSS2Handler) Link() string {
	return childText(h.channel, "link", "")
}

func (h *RSS2Handler) Description() string {
	return childText(h.channel, "description", "")
}

func (h *RSS2Handler) Language() string {
	return canonicalLanguage(childText(h.channel, "language", ""))
}

func (h *RSS2Handler) Updated() *time.Time {
	if t := parseDate(childText(h.channel, "lastBuildDate", "")); t != nil {
		return t
	}
	return parseDate(childText(h.channel, "pubDate", ""))
}

func (h *RSS2Handler) Authors() []string {
	if h.channel == nil {
		return nil
	}
	authors := texts(childElements(h.channel, "managingEditor", ""))
	return append(authors, texts(childElements(h.channel, "creator", NamespaceDC))...)
}

func (h *RSS2Handler) Generator() string {
	return childText(h.channel, "generator", "")
}

func (h *RSS2Handler) Value(name string) (string, bool) {
	return anyChildText(h.channel, name)
}
