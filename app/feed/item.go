package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/lysyi3m/feedparser/app/dialect"
	"github.com/mmcdole/gofeed"
)

// Items flattens every entry that materializes, in offset order.
func (f *Feed) Items() []Item {
	return f.Filtered(nil)
}

func (f *Feed) Summary(items []Item) Summary {
	return Summary{
		Dialect:     f.Kind().String(),
		Title:       f.Title(),
		Link:        f.Link(),
		Description: f.Description(),
		Language:    f.Language(),
		Updated:     f.Updated(),
		Authors:     f.Authors(),
		Generator:   f.Generator(),
		EntryCount:  f.EntryCount(),
		Warnings:    f.Warnings(),
		Items:       items,
	}
}

// NewItem flattens an entry into the output shape used by the filterer and
// the generator.
func NewItem(entry *dialect.Entry) Item {
	item := Item{
		Offset:      entry.Offset,
		ID:          entry.ID,
		Title:       entry.Title,
		Link:        entry.Link,
		Description: entry.Description,
		Content:     entry.Content,
		PublishedAt: entry.PublishedParsed,
		UpdatedAt:   entry.UpdatedParsed,
		Authors:     extractAuthors(entry.Item),
	}

	if entry.Categories != nil {
		item.Categories = entry.Categories
	}

	// RSS 2.0 allows only one enclosure per item
	if len(entry.Enclosures) > 0 && entry.Enclosures[0] != nil {
		enclosure := entry.Enclosures[0]
		item.EnclosureURL = enclosure.URL
		item.EnclosureType = enclosure.Type

		if enclosure.Length != "" {
			if length, err := strconv.ParseInt(enclosure.Length, 10, 64); err == nil {
				item.EnclosureLength = length
			}
		}
	}

	item.ContentHash = contentHash(item)
	return item
}

// contentHash only covers title and link, so description edits keep the hash.
func contentHash(item Item) string {
	content := fmt.Sprintf("%s|%s", item.Title, item.Link)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func extractAuthors(item *gofeed.Item) []string {
	var authors []string

	if len(item.Authors) > 0 {
		for _, author := range item.Authors {
			if author != nil {
				if s := formatAuthor(author.Name, author.Email); s != "" {
					authors = append(authors, s)
				}
			}
		}
	} else if item.Author != nil {
		if s := formatAuthor(item.Author.Name, item.Author.Email); s != "" {
			authors = append(authors, s)
		}
	}

	return authors
}

func formatAuthor(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s (%s)", email, name)
	case name != "":
		return name
	default:
		return email
	}
}
