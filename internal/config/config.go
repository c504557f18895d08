package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the snipscan.yaml configuration.
type Config struct {
	DefaultLanguage string       `yaml:"default_language"`
	Sections        []string     `yaml:"sections"` // quality, issues, architecture, formatting
	Output          OutputConfig `yaml:"output"`
	Log             LogConfig    `yaml:"log"`
}

// OutputConfig controls how CLI reports are presented.
type OutputConfig struct {
	Format string `yaml:"format"` // "markdown" or "json"
}

// LogConfig controls logging behavior.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DefaultLanguage: "python",
		Sections:        []string{"quality", "issues", "architecture", "formatting"},
		Output: OutputConfig{
			Format: "markdown",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "markdown"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// IsSectionEnabled returns true if the named report section is enabled.
func (c *Config) IsSectionEnabled(name string) bool {
	for _, s := range c.Sections {
		if s == name {
			return true
		}
	}
	return false
}
