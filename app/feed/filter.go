package feed

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/lysyi3m/feedparser/app/dialect"
)

// entryFields resolves a named filter field from a materialized entry. The
// id is the dialect's identifier, so RSS 1.0 rules see rdf:about and Atom
// rules see <id>.
var entryFields = map[string]func(*dialect.Entry) []string{
	"id":          func(e *dialect.Entry) []string { return []string{e.ID} },
	"dialect":     func(e *dialect.Entry) []string { return []string{e.Kind.String()} },
	"title":       func(e *dialect.Entry) []string { return []string{e.Title} },
	"description": func(e *dialect.Entry) []string { return []string{e.Description} },
	"content":     func(e *dialect.Entry) []string { return []string{e.Content} },
	"link":        func(e *dialect.Entry) []string { return []string{e.Link} },
	"authors":     func(e *dialect.Entry) []string { return extractAuthors(e.Item) },
	"categories":  func(e *dialect.Entry) []string { return e.Categories },
}

// Filter marks entries a profile rejects. Rules run in profile order and
// the first rejection wins.
type Filter struct {
	rules []filterRule
}

type filterRule struct {
	name     string
	values   func(*dialect.Entry) []string
	includes []string
	excludes []string
}

// NewFilter compiles the profile's filters. A nil profile yields a filter
// that rejects nothing.
func NewFilter(profile *Profile) (*Filter, error) {
	f := &Filter{}
	if profile == nil {
		return f, nil
	}

	for i, pf := range profile.Filters {
		rule, err := newFilterRule(pf)
		if err != nil {
			return nil, fmt.Errorf("filter at index %d: %w", i, err)
		}
		f.rules = append(f.rules, rule)
	}
	return f, nil
}

func newFilterRule(pf ProfileFilter) (filterRule, error) {
	rule := filterRule{includes: pf.Includes, excludes: pf.Excludes}

	switch {
	case pf.Field != "" && pf.Path != "":
		return rule, fmt.Errorf("field and path are mutually exclusive")
	case pf.Path != "":
		expr, err := dialect.CompileSelect(pf.Path)
		if err != nil {
			return rule, err
		}
		rule.name = pf.Path
		rule.values = pathValues(expr)
	default:
		values, ok := entryFields[pf.Field]
		if !ok {
			return rule, fmt.Errorf("unknown field: %q", pf.Field)
		}
		rule.name = pf.Field
		rule.values = values
	}

	if len(rule.includes) == 0 && len(rule.excludes) == 0 {
		return rule, fmt.Errorf("at least one include or exclude rule is required")
	}
	return rule, nil
}

// pathValues reads the text of every node expr selects under the entry.
func pathValues(expr *xpath.Expr) func(*dialect.Entry) []string {
	return func(e *dialect.Entry) []string {
		nodes := e.Query(expr)
		values := make([]string, 0, len(nodes))
		for _, n := range nodes {
			values = append(values, strings.TrimSpace(n.InnerText()))
		}
		return values
	}
}

// Match reports whether the entry is rejected and why.
func (f *Filter) Match(entry *dialect.Entry) (bool, string) {
	for _, rule := range f.rules {
		values := rule.values(entry)

		for _, exclude := range rule.excludes {
			if containsFold(values, exclude) {
				return true, fmt.Sprintf("Excluded by %s filter: contains '%s'", rule.name, exclude)
			}
		}

		if len(rule.includes) == 0 {
			continue
		}
		matched := false
		for _, include := range rule.includes {
			if containsFold(values, include) {
				matched = true
				break
			}
		}
		if !matched {
			return true, fmt.Sprintf("Excluded by %s filter: does not contain any of %v", rule.name, rule.includes)
		}
	}
	return false, ""
}

func containsFold(values []string, pattern string) bool {
	pattern = strings.ToLower(pattern)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), pattern) {
			return true
		}
	}
	return false
}

// Filtered converts every entry that materializes, marking the ones filter
// rejects. Nothing is dropped; callers decide what to do with IsFiltered.
func (f *Feed) Filtered(filter *Filter) []Item {
	items := make([]Item, 0, f.EntryCount())
	for _, entry := range f.Entries() {
		item := NewItem(entry)
		if filter != nil {
			item.IsFiltered, item.FilterReason = filter.Match(entry)
		}
		items = append(items, item)
	}
	return items
}
