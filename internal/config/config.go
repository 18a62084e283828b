// Package config loads and saves the YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the config file. Zero values are
// filled from Default before the file is applied, so a partial file is
// fine.
type Config struct {
	// LogLevel is a logrus level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// DataDir is where session files live.
	DataDir string `yaml:"data_dir"`
	// Symmetric makes scrambles preserve rotational board symmetry.
	Symmetric bool `yaml:"symmetric"`
	// ShowErrors highlights wrong inputs during play.
	ShowErrors bool `yaml:"show_errors"`
	// DisplayMode selects board printing: standard or compact.
	DisplayMode string `yaml:"display_mode"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		LogLevel:    "info",
		DataDir:     filepath.Join(home, ".sudojo"),
		ShowErrors:  true,
		DisplayMode: "standard",
	}
}

// Load reads path and merges it over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.DisplayMode {
	case "standard", "compact":
	default:
		return fmt.Errorf("invalid display mode %q", c.DisplayMode)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	return nil
}
