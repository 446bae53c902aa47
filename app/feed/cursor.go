package feed

import "github.com/lysyi3m/feedparser/app/dialect"

const unpositioned = -1

// cursor is unpositioned (-1), positioned at k, or exhausted once k reaches
// the entry count.
type cursor struct {
	pos int
}

func newCursor() cursor {
	return cursor{pos: unpositioned}
}

// Rewind positions the cursor at offset 0, even for an empty feed.
func (f *Feed) Rewind() {
	f.cursor.pos = 0
}

// Next advances the cursor and reports whether it moved. The first call on
// an unpositioned cursor behaves like Rewind. Advancing past the last entry
// exhausts the cursor so that a loop on Valid terminates.
func (f *Feed) Next() bool {
	switch {
	case f.cursor.pos == unpositioned:
		f.cursor.pos = 0
		return true
	case f.cursor.pos < f.handler.EntryCount():
		f.cursor.pos++
		return true
	default:
		return false
	}
}

func (f *Feed) Valid() bool {
	return f.cursor.pos >= 0 && f.cursor.pos < f.handler.EntryCount()
}

// Key returns the current offset; ok is false when unpositioned or exhausted.
func (f *Feed) Key() (int, bool) {
	if !f.Valid() {
		return 0, false
	}
	return f.cursor.pos, true
}

func (f *Feed) Current() (*dialect.Entry, bool) {
	offset, ok := f.Key()
	if !ok {
		return nil, false
	}
	return f.EntryByOffset(offset)
}
