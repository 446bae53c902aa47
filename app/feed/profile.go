package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultMaxItems = 100

// LoadProfile reads a YAML profile. The profile name is derived from the
// file name without its extension.
func LoadProfile(path string) (*Profile, error) {
	profile, err := parseProfile(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	profile.Name = strings.TrimSuffix(base, filepath.Ext(base))

	if err := validateProfile(profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	slog.Debug("Profile loaded", "profile", profile.Name, "filters", len(profile.Filters), "max_items", profile.Settings.MaxItems)

	return profile, nil
}

func parseProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if profile.Settings.MaxItems == 0 {
		profile.Settings.MaxItems = defaultMaxItems
	}

	return &profile, nil
}

func validateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	if profile.Settings.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}

	if _, err := NewFilter(profile); err != nil {
		return err
	}

	return nil
}
