package dialect

import (
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
)

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	return &t
}

// canonicalLanguage normalizes a BCP 47 tag ("en-us" -> "en-US") and keeps
// the raw value when it does not parse.
func canonicalLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return raw
	}
	return tag.String()
}

func texts(nodes []*xmlquery.Node) []string {
	var out []string
	for _, n := range nodes {
		if s := strings.TrimSpace(n.InnerText()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
