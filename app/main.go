package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lysyi3m/feedparser/app/cfg"
	"github.com/lysyi3m/feedparser/app/dialect"
	"github.com/lysyi3m/feedparser/app/feed"
	"gopkg.in/yaml.v3"
)

func main() {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if err := run(appCfg, os.Stdin, os.Stdout, logger); err != nil {
		slog.Error("feedcat failed", "error", err)
		if dialect.IsClassification(err) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var profile *feed.Profile
	if appCfg.Profile != "" {
		p, err := feed.LoadProfile(appCfg.Profile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = p
	}

	strict := appCfg.Strict || (profile != nil && profile.Settings.Strict)

	f, err := openFeed(appCfg.File, stdin, strict, logger)
	if err != nil {
		return err
	}

	if appCfg.Lookup() {
		return printEntry(appCfg, f, stdout)
	}

	items, err := selectItems(f, profile, appCfg.Limit)
	if err != nil {
		return err
	}
	summary := f.Summary(items)

	logger.Debug("Feed processed",
		"dialect", summary.Dialect,
		"entries", summary.EntryCount,
		"items", len(items))

	switch appCfg.Format {
	case "yaml":
		return writeYAML(stdout, summary)
	case "rss":
		rss, err := feed.NewGenerator(appCfg.Version, appCfg.SelfLink).Run(summary)
		if err != nil {
			return fmt.Errorf("failed to generate RSS: %w", err)
		}
		_, err = fmt.Fprintln(stdout, rss)
		return err
	default:
		return writeText(stdout, summary)
	}
}

func openFeed(path string, stdin io.Reader, strict bool, logger *slog.Logger) (*feed.Feed, error) {
	r := stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open feed: %w", err)
		}
		defer file.Close()
		r = file
	}

	return feed.Parse(r, strict, feed.WithLogger(logger))
}

// selectItems applies profile filters and the item limit. An explicit limit
// overrides the profile's max_items.
func selectItems(f *feed.Feed, profile *feed.Profile, limit int) ([]feed.Item, error) {
	filter, err := feed.NewFilter(profile)
	if err != nil {
		return nil, fmt.Errorf("invalid profile filters: %w", err)
	}
	items := f.Filtered(filter)

	showFiltered := profile != nil && profile.Settings.ShowFiltered
	if !showFiltered {
		visible := items[:0]
		for _, item := range items {
			if !item.IsFiltered {
				visible = append(visible, item)
			}
		}
		items = visible
	}

	if limit == 0 && profile != nil {
		limit = profile.Settings.MaxItems
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func printEntry(appCfg *cfg.Cfg, f *feed.Feed, stdout io.Writer) error {
	var (
		entry *dialect.Entry
		ok    bool
	)
	if appCfg.ID != "" {
		entry, ok = f.EntryByID(appCfg.ID)
	} else {
		entry, ok = f.EntryByOffset(appCfg.Offset)
	}
	if !ok {
		if appCfg.ID != "" {
			return fmt.Errorf("entry not found: id %q", appCfg.ID)
		}
		return fmt.Errorf("entry not found: offset %d", appCfg.Offset)
	}

	item := feed.NewItem(entry)
	switch appCfg.Format {
	case "yaml":
		return writeYAML(stdout, item)
	case "rss":
		_, err := fmt.Fprintln(stdout, entry.String())
		return err
	default:
		return writeItem(stdout, item)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, summary feed.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Dialect:     %s\n", summary.Dialect)
	fmt.Fprintf(&b, "Title:       %s\n", summary.Title)
	if summary.Link != "" {
		fmt.Fprintf(&b, "Link:        %s\n", summary.Link)
	}
	if summary.Language != "" {
		fmt.Fprintf(&b, "Language:    %s\n", summary.Language)
	}
	if summary.Updated != nil {
		fmt.Fprintf(&b, "Updated:     %s\n", summary.Updated.Format(time.RFC3339))
	}
	if len(summary.Authors) > 0 {
		fmt.Fprintf(&b, "Authors:     %s\n", strings.Join(summary.Authors, ", "))
	}
	if summary.Generator != "" {
		fmt.Fprintf(&b, "Generator:   %s\n", summary.Generator)
	}
	fmt.Fprintf(&b, "Entries:     %d\n", summary.EntryCount)
	for _, warning := range summary.Warnings {
		fmt.Fprintf(&b, "Warning:     %s\n", warning)
	}

	for _, item := range summary.Items {
		marker := ""
		if item.IsFiltered {
			marker = " [filtered]"
		}
		fmt.Fprintf(&b, "\n[%d] %s%s\n", item.Offset, item.Title, marker)
		if item.ID != "" {
			fmt.Fprintf(&b, "    id:   %s\n", item.ID)
		}
		if item.Link != "" && item.Link != item.ID {
			fmt.Fprintf(&b, "    link: %s\n", item.Link)
		}
		if item.PublishedAt != nil {
			fmt.Fprintf(&b, "    date: %s\n", item.PublishedAt.Format(time.RFC3339))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeItem(w io.Writer, item feed.Item) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Offset:      %d\n", item.Offset)
	fmt.Fprintf(&b, "ID:          %s\n", item.ID)
	fmt.Fprintf(&b, "Title:       %s\n", item.Title)
	if item.Link != "" {
		fmt.Fprintf(&b, "Link:        %s\n", item.Link)
	}
	if item.PublishedAt != nil {
		fmt.Fprintf(&b, "Published:   %s\n", item.PublishedAt.Format(time.RFC3339))
	}
	if item.UpdatedAt != nil {
		fmt.Fprintf(&b, "Updated:     %s\n", item.UpdatedAt.Format(time.RFC3339))
	}
	if len(item.Authors) > 0 {
		fmt.Fprintf(&b, "Authors:     %s\n", strings.Join(item.Authors, ", "))
	}
	if len(item.Categories) > 0 {
		fmt.Fprintf(&b, "Categories:  %s\n", strings.Join(item.Categories, ", "))
	}
	if item.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", item.Description)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
