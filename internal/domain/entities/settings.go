package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for commitgate. Every field has a
// default, so running without a config file is fully supported.
type Settings struct {
	Message MessageSettings          `yaml:"message"`
	Checks  map[string]CheckSettings `yaml:"checks"`
}

// MessageSettings holds the commit-message validation rules.
type MessageSettings struct {
	SubjectLimit int      `yaml:"subject_limit"` // max subject length, inclusive
	Types        []string `yaml:"types"`         // allowed type tags
}

// CheckSettings holds per-check settings, keyed by check label.
type CheckSettings struct {
	Enabled *bool `yaml:"enabled"` // nil means enabled
}

// DefaultSubjectLimit is the subject length cap applied when no config
// overrides it.
const DefaultSubjectLimit = 50

// defaultTypes are the conventional-commit type tags accepted out of the box.
var defaultTypes = []string{
	"fix", "feat", "refactor", "test", "docs", "perf", "style", "chore",
}

// typeTagPattern restricts configured type tags to bare lowercase words.
var typeTagPattern = regexp.MustCompile(`^[a-z]+$`)

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Message: MessageSettings{
			SubjectLimit: DefaultSubjectLimit,
			Types:        append([]string(nil), defaultTypes...),
		},
		Checks: map[string]CheckSettings{},
	}
}

// NewSettings reads and parses a configuration file, filling in defaults for
// anything the file leaves unset.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if settings.Message.SubjectLimit <= 0 {
		settings.Message.SubjectLimit = DefaultSubjectLimit
	}
	if len(settings.Message.Types) == 0 {
		settings.Message.Types = append([]string(nil), defaultTypes...)
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".commitgate.yaml",
		".commitgate.yml",
		"commitgate.yaml",
		"commitgate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// CheckEnabled reports whether the named check should run. Checks are enabled
// unless the config explicitly turns them off.
func (s *Settings) CheckEnabled(label string) bool {
	check, ok := s.Checks[label]
	if !ok || check.Enabled == nil {
		return true
	}
	return *check.Enabled
}

// validate rejects configurations that would produce a meaningless regex or
// an impossible rule set.
func validate(s *Settings) error {
	for _, t := range s.Message.Types {
		if !typeTagPattern.MatchString(t) {
			return fmt.Errorf("invalid commit type tag %q: must be a lowercase word", t)
		}
	}
	return nil
}
