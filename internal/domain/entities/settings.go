package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the optional file-based configuration. Policy knobs stay on
// the command line; the file carries per-checker enablement and standing
// include/exclude lists that apply to every run.
type Settings struct {
	Checkers map[string]CheckerConfig `yaml:"checkers"`
}

// CheckerConfig holds the settings for a single checker. A checker listed
// in the file must set enabled explicitly; checkers absent from the file
// are enabled by default.
type CheckerConfig struct {
	Enabled bool     `yaml:"enabled"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// NewSettings reads and validates a settings file.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{Checkers: map[string]CheckerConfig{}}
}

// FindConfigFile searches standard locations for a settings file and
// returns the first match.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config", "outdated"))
	}

	patterns := []string{".outdated.yaml", ".outdated.yml", "outdated.yaml", "outdated.yml"}

	for _, location := range locations {
		for _, pattern := range patterns {
			path := filepath.Join(location, pattern)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", errors.New("no config file found in default locations")
}

func validate(settings *Settings) error {
	for name, checker := range settings.Checkers {
		if name == "" {
			return errors.New("checkers entries must be keyed by a checker name")
		}
		for _, entry := range checker.Include {
			if entry == "" {
				return fmt.Errorf("checkers.%s.include must not contain empty names", name)
			}
		}
		for _, entry := range checker.Exclude {
			if entry == "" {
				return fmt.Errorf("checkers.%s.exclude must not contain empty names", name)
			}
		}
	}
	return nil
}
