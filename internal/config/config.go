// Package config loads the optional YAML defaults file for the jsonish CLI.
// The core library takes its configuration through jsonish.BuildConfig only;
// everything here is command-line convenience.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds formatter defaults. Command-line flags override these.
type Config struct {
	// Indent is the indentation unit repeated per nesting level.
	Indent string `yaml:"indent"`
	// Compact disables pretty printing.
	Compact bool `yaml:"compact"`
	// Color enables ANSI colorization of the output.
	Color bool `yaml:"color"`
	// KeyCase rewrites object keys before rendering. One of
	// "snake", "camel", "pascal", "kebab", "screaming", or empty for none.
	KeyCase string `yaml:"key_case"`
}

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Indent: "  ",
	}
}

var validKeyCases = map[string]bool{
	"":          true,
	"snake":     true,
	"camel":     true,
	"pascal":    true,
	"kebab":     true,
	"screaming": true,
}

// Validate checks field values that flags and the YAML file share.
func (c *Config) Validate() error {
	if !validKeyCases[c.KeyCase] {
		return fmt.Errorf("invalid key_case %q", c.KeyCase)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file, layering it over the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile returns the path of the nearest config file, looking in the
// working directory and then the home directory. Empty if none exists.
func FindConfigFile() string {
	names := []string{".jsonish.yml", ".jsonish.yaml"}

	if cwd, err := os.Getwd(); err == nil {
		for _, name := range names {
			path := filepath.Join(cwd, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range names {
			path := filepath.Join(home, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Load resolves the effective configuration: an explicit path wins, then a
// discovered file, then the defaults.
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return LoadConfig(explicitPath)
	}
	if path := FindConfigFile(); path != "" {
		return LoadConfig(path)
	}
	return NewConfig(), nil
}
