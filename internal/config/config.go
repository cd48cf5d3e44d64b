// Package config loads the category table and tool settings for organize.
//
// The table ships as embedded defaults; operators customize it by placing
// an edited copy in one of the search paths before running. There is no
// runtime flag for it.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultsFS embed.FS

// Bucket is one named category and the extensions it owns.
// Extensions are stored lowercase without a leading dot.
type Bucket struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// LoggingConfig selects log format and verbosity.
type LoggingConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Config holds application configuration.
//
// Categories is an ordered list, not a map: when two buckets claim the
// same extension the one listed first wins, and that ordering must be
// stable across runs.
type Config struct {
	Categories []Bucket      `yaml:"categories"`
	Logging    LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the embedded category table and default settings.
func DefaultConfig() *Config {
	cfg := &Config{
		Logging: LoggingConfig{Format: "text", Level: "warn"},
	}

	data, err := defaultsFS.ReadFile("categories.yaml")
	if err != nil {
		// The file is compiled in; this cannot happen in a built binary.
		return cfg
	}
	_ = yaml.Unmarshal(data, cfg)

	return cfg
}

// configPaths returns the list of paths to search for an override file.
func configPaths() []string {
	paths := []string{
		".organize.yaml",
		".organize.yml",
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "organize", "config.yaml"),
			filepath.Join(home, ".config", "organize", "config.yml"),
			filepath.Join(home, ".organize.yaml"),
		)
	}

	return paths
}

// Load returns the embedded defaults merged with the first override file
// found in the search paths. An override that defines categories replaces
// the whole table; partial merging of an ordered list would make the
// duplicate-extension tie-break depend on two files at once.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, err
			}
			break
		}
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if len(override.Categories) > 0 {
		c.Categories = override.Categories
	}
	if override.Logging.Format != "" {
		c.Logging.Format = override.Logging.Format
	}
	if override.Logging.Level != "" {
		c.Logging.Level = override.Logging.Level
	}

	return nil
}
