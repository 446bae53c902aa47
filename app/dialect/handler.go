package dialect

import (
	"fmt"
	"time"

	"github.com/antchfx/xmlquery"
)

// Metadata is the feed-level surface every handler exposes. Fields that a
// dialect does not carry come back empty.
type Metadata interface {
	Title() string
	Link() string
	Description() string
	Language() string
	Updated() *time.Time
	Authors() []string
	Generator() string
	// Value returns the text of the first feed-level element with the given
	// local name, in any namespace.
	Value(name string) (string, bool)
	// Select evaluates an XPath expression against the document.
	Select(expr string) ([]*xmlquery.Node, error)
}

// Handler is the capability contract shared by all dialect variants.
type Handler interface {
	Metadata

	Kind() Kind
	EntryCount() int
	// CachedEntry returns an entry only if it was materialized before.
	CachedEntry(offset int) (*Entry, bool)
	MaterializeEntry(offset int) (*Entry, error)
	// EntryByID scans entries in offset order. Entries that fail to
	// materialize are skipped.
	EntryByID(id string) (*Entry, bool)
	String() string
}

// New binds the handler for kind to a parsed document.
func New(kind Kind, doc *xmlquery.Node, strict bool) (Handler, error) {
	root := RootElement(doc)
	if root == nil {
		return nil, &ClassificationError{Reason: "document has no root element"}
	}

	var (
		h   Handler
		err error
	)
	switch kind {
	case Atom:
		h = NewAtom(root, strict)
	case RSS1, RSS09:
		var rdf *RDFHandler
		if rdf, err = NewRDF(kind, root, strict); err == nil {
			h = rdf
		}
	case RSS2:
		var rss2 *RSS2Handler
		if rss2, err = NewRSS2(root, strict); err == nil {
			h = rss2
		}
	default:
		err = fmt.Errorf("no handler for dialect %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
