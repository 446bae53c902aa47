package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

var formats = map[string]bool{
	"text": true,
	"yaml": true,
	"rss":  true,
}

type rawCfg struct {
	// Input configuration
	Strict  bool   `long:"strict" env:"FEEDCAT_STRICT" description:"Reject documents missing required elements"`
	Profile string `short:"p" long:"profile" env:"FEEDCAT_PROFILE" description:"YAML profile with filters and output limits"`

	// Selection
	ID     string `long:"id" description:"Print the entry with this identifier"`
	Offset int    `long:"offset" default:"-1" description:"Print the entry at this zero-based offset"`
	Limit  int    `short:"n" long:"limit" description:"Print at most this many entries (0 means profile or all)"`

	// Output configuration
	Format   string `short:"f" long:"format" env:"FEEDCAT_FORMAT" default:"text" description:"Output format: text, yaml or rss"`
	SelfLink string `long:"self-link" env:"FEEDCAT_SELF_LINK" description:"atom:link self reference written by the rss format"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Feed document to read (stdin when omitted or -)"`
	} `positional-args:"yes"`
}

// Load parses command line arguments. A nil Cfg with a nil error means help
// was printed.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.Usage = "[OPTIONS] [FILE]"

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		File:     raw.Args.File,
		Strict:   raw.Strict,
		Profile:  raw.Profile,
		ID:       raw.ID,
		Offset:   raw.Offset,
		Limit:    raw.Limit,
		Format:   raw.Format,
		SelfLink: raw.SelfLink,
		Timezone: raw.Timezone,
		Debug:    raw.Debug,
		Version:  GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", cfg.Timezone, err)
	}

	return cfg, nil
}

func validate(cfg *Cfg) error {
	if !formats[cfg.Format] {
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if cfg.ID != "" && cfg.Offset >= 0 {
		return fmt.Errorf("--id and --offset are mutually exclusive")
	}
	if cfg.Offset < -1 {
		return fmt.Errorf("offset must be non-negative")
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return nil
}

func applyTimezone(timezone string) error {
	if timezone == "" {
		return nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return err
	}
	time.Local = loc
	return nil
}
