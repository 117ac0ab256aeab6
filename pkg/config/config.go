// Package config loads explorer settings and locates the project root the
// explorer anchors to. Settings live in .canopy/config.yaml under the
// project root; a missing file means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents an explorer configuration file (.canopy/config.yaml).
type Config struct {
	// ShowHidden includes dot-entries in the tree (default: false).
	ShowHidden bool `yaml:"show_hidden,omitempty"`

	// UseGitignore applies .gitignore exclusion rules (default: true).
	UseGitignore *bool `yaml:"use_gitignore,omitempty"`

	// MaxDepth caps scan recursion; 0 means unlimited.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Preview controls the file preview pane (default: enabled).
	Preview PreviewConfig `yaml:"preview,omitempty"`

	// Accent is the highlight color for the selected row, as a lipgloss
	// color string (ANSI number or hex).
	Accent string `yaml:"accent,omitempty"`
}

// PreviewConfig controls the preview pane.
type PreviewConfig struct {
	// Enabled turns the pane on (default: true).
	Enabled *bool `yaml:"enabled,omitempty"`

	// MaxBytes caps how much of a file is read for preview (default: 64KiB).
	MaxBytes int `yaml:"max_bytes,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Accent: "212",
		Preview: PreviewConfig{
			MaxBytes: 64 * 1024,
		},
	}
}

// GitignoreEnabled reports the effective use_gitignore setting.
func (c Config) GitignoreEnabled() bool {
	if c.UseGitignore == nil {
		return true
	}
	return *c.UseGitignore
}

// PreviewEnabled reports the effective preview.enabled setting.
func (c Config) PreviewEnabled() bool {
	if c.Preview.Enabled == nil {
		return true
	}
	return *c.Preview.Enabled
}

// Load reads the configuration at path. A missing file yields Default();
// a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("invalid config %s: max_depth must be >= 0", path)
	}
	if cfg.Preview.MaxBytes <= 0 {
		cfg.Preview.MaxBytes = Default().Preview.MaxBytes
	}
	if cfg.Accent == "" {
		cfg.Accent = Default().Accent
	}
	return cfg, nil
}
