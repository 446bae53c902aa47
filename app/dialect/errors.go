package dialect

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is matched by every ClassificationError.
var ErrUnknownFormat = errors.New("feed type unknown")

// ClassificationError is returned when no dialect matches the document root.
type ClassificationError struct {
	Root      string // local name of the root element, empty if there is none
	Namespace string
	Reason    string
}

func (e *ClassificationError) Error() string {
	if e.Root == "" {
		return fmt.Sprintf("%s: %s", ErrUnknownFormat, e.Reason)
	}
	return fmt.Sprintf("%s: root <%s> (namespace %q): %s", ErrUnknownFormat, e.Root, e.Namespace, e.Reason)
}

func (e *ClassificationError) Unwrap() error {
	return ErrUnknownFormat
}

// StrictError reports a document that was classified but lacks the structure
// its dialect requires. Only returned when strict mode is enabled.
type StrictError struct {
	Kind    Kind
	Missing string
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("%s document is missing required element <%s>", e.Kind, e.Missing)
}

// EntryError describes why a single entry could not be materialized.
type EntryError struct {
	Offset int
	Err    error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry at offset %d: %v", e.Offset, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// IsClassification reports whether err is a classification failure.
func IsClassification(err error) bool {
	var classErr *ClassificationError
	return errors.As(err, &classErr)
}
