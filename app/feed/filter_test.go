package feed

import (
	"strings"
	"testing"
)

const rss1Tagged = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel rdf:about="https://example.com/">
    <title>Tagged</title>
    <link>https://example.com/</link>
    <description>Tagged posts</description>
  </channel>
  <item rdf:about="https://example.com/posts/go">
    <title>Go release notes</title>
    <link>https://example.com/posts/go</link>
    <dc:subject>golang</dc:subject>
    <dc:subject>release</dc:subject>
  </item>
  <item rdf:about="https://example.com/ads/1">
    <title>Sponsored</title>
    <link>https://example.com/ads/1</link>
    <dc:subject>ads</dc:subject>
  </item>
  <item rdf:about="https://example.com/posts/rust">
    <title>Rust notes</title>
    <link>https://example.com/posts/rust</link>
  </item>
</rdf:RDF>`

func mustFilter(t *testing.T, filters ...ProfileFilter) *Filter {
	t.Helper()
	filter, err := NewFilter(&Profile{Filters: filters})
	if err != nil {
		t.Fatalf("Expected filter to compile, got: %v", err)
	}
	return filter
}

func filteredOffsets(items []Item) []int {
	var offsets []int
	for _, item := range items {
		if item.IsFiltered {
			offsets = append(offsets, item.Offset)
		}
	}
	return offsets
}

func TestFilterNilProfile(t *testing.T) {
	filter, err := NewFilter(nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	items := mustFeed(t, rss1Tagged).Filtered(filter)
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got: %d", len(items))
	}
	if got := filteredOffsets(items); len(got) != 0 {
		t.Errorf("Expected nothing filtered, got offsets: %v", got)
	}
}

func TestFilterPathExcludes(t *testing.T) {
	filter := mustFilter(t, ProfileFilter{Path: "dc:subject", Excludes: []string{"ADS"}})

	items := mustFeed(t, rss1Tagged).Filtered(filter)

	got := filteredOffsets(items)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Expected only offset 1 filtered, got: %v", got)
	}
	if items[1].FilterReason != "Excluded by dc:subject filter: contains 'ADS'" {
		t.Errorf("Expected path in the reason, got: %s", items[1].FilterReason)
	}
}

func TestFilterPathIncludesAnySelectedNode(t *testing.T) {
	filter := mustFilter(t, ProfileFilter{Path: "dc:subject", Includes: []string{"release"}})

	items := mustFeed(t, rss1Tagged).Filtered(filter)

	if items[0].IsFiltered {
		t.Errorf("Expected the second subject to satisfy the include, got: %s", items[0].FilterReason)
	}
	if !items[2].IsFiltered {
		t.Error("Expected an entry without subjects to fail the include")
	}
	if !strings.Contains(items[2].FilterReason, "does not contain any of [release]") {
		t.Errorf("Expected include reason, got: %s", items[2].FilterReason)
	}
}

func TestFilterPathStaysInsideEntry(t *testing.T) {
	filter := mustFilter(t, ProfileFilter{Path: "rss:title", Excludes: []string{"rust"}})

	got := filteredOffsets(mustFeed(t, rss1Tagged).Filtered(filter))
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected the relative path to see only each entry's title, got: %v", got)
	}
}

func TestFilterIDUsesDialectIdentifier(t *testing.T) {
	filter := mustFilter(t, ProfileFilter{Field: "id", Excludes: []string{"/ads/"}})

	got := filteredOffsets(mustFeed(t, rss1Tagged).Filtered(filter))
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected rdf:about to drive the id rule, got: %v", got)
	}
}

func TestFilterDialectField(t *testing.T) {
	filter := mustFilter(t, ProfileFilter{Field: "dialect", Includes: []string{"atom"}})

	if got := filteredOffsets(mustFeed(t, atomThreeEntries).Filtered(filter)); len(got) != 0 {
		t.Errorf("Expected atom entries to pass, got: %v", got)
	}
	if got := filteredOffsets(mustFeed(t, legacyAtom).Filtered(filter)); len(got) != 0 {
		t.Errorf("Expected legacy atom entries to pass, got: %v", got)
	}
	if got := filteredOffsets(mustFeed(t, rss2TwoItems).Filtered(filter)); len(got) != 2 {
		t.Errorf("Expected rss2 entries to be filtered, got: %v", got)
	}
}

func TestFilterFirstRejectionWins(t *testing.T) {
	filter := mustFilter(t,
		ProfileFilter{Field: "link", Excludes: []string{"entry2"}},
		ProfileFilter{Field: "title", Includes: []string{"entry 1"}},
	)

	items := mustFeed(t, atomThreeEntries).Filtered(filter)

	if items[0].IsFiltered {
		t.Errorf("Expected first entry to pass, got: %s", items[0].FilterReason)
	}
	if items[1].FilterReason != "Excluded by link filter: contains 'entry2'" {
		t.Errorf("Expected link rule to reject first, got: %s", items[1].FilterReason)
	}
	if !strings.HasPrefix(items[2].FilterReason, "Excluded by title filter") {
		t.Errorf("Expected title rule to reject, got: %s", items[2].FilterReason)
	}
}

func TestFilterSkipsBrokenEntries(t *testing.T) {
	h := newStubHandler("a", "b", "c")
	h.broken[1] = true

	items := stubFeed(h).Filtered(mustFilter(t, ProfileFilter{Field: "title", Excludes: []string{"c"}}))

	if len(items) != 2 {
		t.Fatalf("Expected the broken entry to be skipped, got: %d items", len(items))
	}
	if items[1].Offset != 2 || !items[1].IsFiltered {
		t.Errorf("Expected offset 2 filtered, got: %+v", items[1])
	}
}

func TestNewFilterErrors(t *testing.T) {
	tests := []struct {
		name   string
		filter ProfileFilter
		errMsg string
	}{
		{"no rules", ProfileFilter{Field: "title"}, "filter at index 0: at least one include or exclude rule is required"},
		{"unknown field", ProfileFilter{Field: "body", Excludes: []string{"x"}}, `unknown field: "body"`},
		{"bad path", ProfileFilter{Path: "//[", Excludes: []string{"x"}}, "invalid xpath expression"},
		{"field and path", ProfileFilter{Field: "title", Path: "rss:title", Excludes: []string{"x"}}, "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFilter(&Profile{Filters: []ProfileFilter{tt.filter}})
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing '%s', got: %v", tt.errMsg, err)
			}
		})
	}
}
