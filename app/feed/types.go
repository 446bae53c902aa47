package feed

import (
	"time"
)

// Output types

type Item struct {
	Offset      int        `yaml:"offset"`
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title,omitempty"`
	Link        string     `yaml:"link,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Content     string     `yaml:"content,omitempty"`
	PublishedAt *time.Time `yaml:"published_at,omitempty"`
	UpdatedAt   *time.Time `yaml:"updated_at,omitempty"`
	Authors     []string   `yaml:"authors,omitempty"` // "email (name)", "name" or "email"
	Categories  []string   `yaml:"categories,omitempty"`

	ContentHash     string `yaml:"content_hash"`
	IsFiltered      bool   `yaml:"is_filtered,omitempty"`
	FilterReason    string `yaml:"filter_reason,omitempty"`
	EnclosureURL    string `yaml:"enclosure_url,omitempty"`
	EnclosureLength int64  `yaml:"enclosure_length,omitempty"` // bytes
	EnclosureType   string `yaml:"enclosure_type,omitempty"`
}

type Summary struct {
	Dialect     string     `yaml:"dialect"`
	Title       string     `yaml:"title,omitempty"`
	Link        string     `yaml:"link,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Language    string     `yaml:"language,omitempty"`
	Updated     *time.Time `yaml:"updated,omitempty"`
	Authors     []string   `yaml:"authors,omitempty"`
	Generator   string     `yaml:"generator,omitempty"`
	EntryCount  int        `yaml:"entry_count"`
	Warnings    []string   `yaml:"warnings,omitempty"`
	Items       []Item     `yaml:"items"`
}

// Profile types

type Profile struct {
	Name     string          `yaml:"-"` // Derived from filename (without extension)
	Settings ProfileSettings `yaml:"settings"`
	Filters  []ProfileFilter `yaml:"filters"`
}

type ProfileSettings struct {
	MaxItems     int  `yaml:"max_items"`
	ShowFiltered bool `yaml:"show_filtered"` // keep filtered items in the output, marked
	Strict       bool `yaml:"strict"`
}

// ProfileFilter matches either a named entry field or the text of the nodes
// an XPath expression selects under the entry element.
type ProfileFilter struct {
	Field    string   `yaml:"field"`
	Path     string   `yaml:"path"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}
