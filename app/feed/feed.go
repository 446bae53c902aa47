package feed

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/antchfx/xmlquery"
	"github.com/lysyi3m/feedparser/app/dialect"
)

// Feed gives uniform access to the entries of any supported dialect.
// Feed-level metadata is served by the embedded handler capabilities.
//
// A Feed is not safe for concurrent use.
type Feed struct {
	dialect.Metadata

	doc      *xmlquery.Node
	handler  dialect.Handler
	ids      map[string]int
	cursor   cursor
	warnings []string
	logger   *slog.Logger
}

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes deprecation notices and entry failures to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func New(data []byte, strict bool, opts ...Option) (*Feed, error) {
	return Parse(bytes.NewReader(data), strict, opts...)
}

// Parse reads a whole document, detects its dialect and binds the matching
// handler. Classification failures are returned as *dialect.ClassificationError.
func Parse(r io.Reader, strict bool, opts ...Option) (*Feed, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	detection, err := dialect.Detect(dialect.RootElement(doc))
	if err != nil {
		return nil, err
	}

	handler, err := dialect.New(detection.Kind, doc, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s handler: %w", detection.Kind, err)
	}

	f := newFeed(doc, handler, o.logger)
	if detection.Notice != "" {
		f.warnings = append(f.warnings, detection.Notice)
		f.logger.Warn(detection.Notice, "dialect", detection.Kind.String())
	}

	f.logger.Debug("Feed detected",
		"dialect", detection.Kind.String(),
		"entries", handler.EntryCount(),
		"strict", strict)

	return f, nil
}

func newFeed(doc *xmlquery.Node, handler dialect.Handler, logger *slog.Logger) *Feed {
	return &Feed{
		Metadata: handler,
		doc:      doc,
		handler:  handler,
		ids:      make(map[string]int),
		cursor:   newCursor(),
		logger:   logger,
	}
}

func (f *Feed) Kind() dialect.Kind {
	return f.handler.Kind()
}

func (f *Feed) EntryCount() int {
	return f.handler.EntryCount()
}

// Document is the parsed tree. Callers must not modify it.
func (f *Feed) Document() *xmlquery.Node {
	return f.doc
}

// Warnings lists the non-fatal notices raised while the feed was built.
func (f *Feed) Warnings() []string {
	return append([]string(nil), f.warnings...)
}

func (f *Feed) String() string {
	return f.handler.String()
}

// EntryByOffset materializes the entry at offset on first use. A false
// result means the offset is out of range or the entry could not be built;
// either way other offsets are unaffected.
func (f *Feed) EntryByOffset(offset int) (*dialect.Entry, bool) {
	if offset < 0 || offset >= f.handler.EntryCount() {
		return nil, false
	}

	if entry, ok := f.handler.CachedEntry(offset); ok {
		return entry, true
	}

	entry, err := f.handler.MaterializeEntry(offset)
	if err != nil {
		f.logger.Debug("Entry unavailable", "offset", offset, "error", err)
		return nil, false
	}

	if entry.ID != "" {
		f.ids[entry.ID] = offset
	}
	return entry, true
}

// EntryByID resolves ids seen through EntryByOffset directly. Other ids fall
// back to the handler's scan, which is linear in the number of entries.
// An empty id never matches.
func (f *Feed) EntryByID(id string) (*dialect.Entry, bool) {
	if id == "" {
		return nil, false
	}
	if offset, ok := f.ids[id]; ok {
		return f.EntryByOffset(offset)
	}
	return f.handler.EntryByID(id)
}

// Entries returns a fresh traversal over all entries that materialize. It
// does not move the cursor, so several traversals may run side by side.
func (f *Feed) Entries() iter.Seq2[int, *dialect.Entry] {
	return func(yield func(int, *dialect.Entry) bool) {
		for i := 0; i < f.handler.EntryCount(); i++ {
			entry, ok := f.EntryByOffset(i)
			if !ok {
				continue
			}
			if !yield(i, entry) {
				return
			}
		}
	}
}
