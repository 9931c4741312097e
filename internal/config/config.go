// Package config loads the REPL's on-disk settings file, following the
// yaml-struct-tag pattern the teacher repo uses for its own project
// configuration (funvibe-funxy's internal/ext.Config).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk shape of ~/.computorv2.yaml.
type Settings struct {
	// Precision is the number of decimal digits used when a rational
	// value must be rendered as a float approximation (§4.B).
	Precision int `yaml:"precision"`
	// Color enables ANSI-coloured REPL output when the output stream is
	// a terminal (checked independently via go-isatty).
	Color bool `yaml:"color"`
	// HistoryPath overrides the default history database location.
	HistoryPath string `yaml:"history_path,omitempty"`
	// HistoryLimit caps the number of retained history entries; 0 means
	// unbounded.
	HistoryLimit int `yaml:"history_limit,omitempty"`
}

// Default returns the settings used when no config file is present.
func Default() *Settings {
	return &Settings{
		Precision:    10,
		Color:        true,
		HistoryLimit: 1000,
	}
}

// DefaultPath returns ~/.computorv2.yaml, or an error if the home
// directory cannot be resolved.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".computorv2.yaml"), nil
}

// Load reads and parses the settings file at path. A missing file is not
// an error: Load returns Default() so the REPL always has usable
// settings (§6: the core does not depend on any external collaborator).
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
