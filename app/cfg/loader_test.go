package cfg

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.File != "" {
		t.Errorf("Expected empty file, got '%s'", cfg.File)
	}
	if cfg.Format != "text" {
		t.Errorf("Expected format 'text', got '%s'", cfg.Format)
	}
	if cfg.Offset != -1 {
		t.Errorf("Expected offset -1, got %d", cfg.Offset)
	}
	if cfg.Lookup() {
		t.Error("Expected no lookup by default")
	}
	if cfg.Version == "" {
		t.Error("Expected version to be set")
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"--strict", "-f", "rss", "--offset", "2", "--self-link", "https://example.com/out.xml", "feed.xml"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.File != "feed.xml" {
		t.Errorf("Expected file 'feed.xml', got '%s'", cfg.File)
	}
	if !cfg.Strict {
		t.Error("Expected strict to be enabled")
	}
	if cfg.Format != "rss" {
		t.Errorf("Expected format 'rss', got '%s'", cfg.Format)
	}
	if cfg.Offset != 2 || !cfg.Lookup() {
		t.Errorf("Expected offset lookup at 2, got %d", cfg.Offset)
	}
	if cfg.SelfLink != "https://example.com/out.xml" {
		t.Errorf("Expected self link, got '%s'", cfg.SelfLink)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FEEDCAT_FORMAT", "yaml")
	t.Setenv("FEEDCAT_STRICT", "true")

	cfg, err := Load([]string{"--id", "item-1"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Format != "yaml" {
		t.Errorf("Expected format 'yaml' from env, got '%s'", cfg.Format)
	}
	if !cfg.Strict {
		t.Error("Expected strict from env")
	}
	if cfg.ID != "item-1" || !cfg.Lookup() {
		t.Errorf("Expected id lookup 'item-1', got '%s'", cfg.ID)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"bad format", []string{"-f", "json"}, "unsupported format: json"},
		{"id and offset", []string{"--id", "a", "--offset", "0"}, "mutually exclusive"},
		{"negative offset", []string{"--offset=-3"}, "offset must be non-negative"},
		{"negative limit", []string{"--limit=-1"}, "limit must be non-negative"},
		{"bad timezone", []string{"--timezone", "Mars/Olympus"}, "invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing '%s', got: %v", tt.errMsg, err)
			}
		})
	}
}
