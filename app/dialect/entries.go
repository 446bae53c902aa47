package dialect

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

type buildFunc func(offset int, node *xmlquery.Node) (*Entry, error)

// entrySet keeps the entry elements found at construction and the entries
// materialized from them so far. Offsets never change once assigned.
type entrySet struct {
	root    *xmlquery.Node
	nodes   []*xmlquery.Node
	entries []*Entry
	build   buildFunc
}

func newEntrySet(root *xmlquery.Node, nodes []*xmlquery.Node, build buildFunc) entrySet {
	return entrySet{
		root:    root,
		nodes:   nodes,
		entries: make([]*Entry, len(nodes)),
		build:   build,
	}
}

func (s *entrySet) EntryCount() int {
	return len(s.nodes)
}

func (s *entrySet) CachedEntry(offset int) (*Entry, bool) {
	if offset < 0 || offset >= len(s.entries) || s.entries[offset] == nil {
		return nil, false
	}
	return s.entries[offset], true
}

func (s *entrySet) MaterializeEntry(offset int) (*Entry, error) {
	if offset < 0 || offset >= len(s.nodes) {
		return nil, &EntryError{Offset: offset, Err: fmt.Errorf("offset out of range [0,%d)", len(s.nodes))}
	}
	if e := s.entries[offset]; e != nil {
		return e, nil
	}

	e, err := s.build(offset, s.nodes[offset])
	if err != nil {
		return nil, &EntryError{Offset: offset, Err: err}
	}
	s.entries[offset] = e
	return e, nil
}

// EntryByID may materialize every entry on a cold feed.
func (s *entrySet) EntryByID(id string) (*Entry, bool) {
	for i := range s.nodes {
		e, err := s.MaterializeEntry(i)
		if err != nil {
			continue
		}
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (s *entrySet) Select(expr string) ([]*xmlquery.Node, error) {
	return selectNodes(s.root, expr)
}

func (s *entrySet) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")
	b.WriteString(s.root.OutputXML(true))
	return b.String()
}
