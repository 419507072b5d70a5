/*
Package config holds tracker configuration.

PURPOSE:
  A small TOML file pointing the tracker at its plan and its storage,
  plus the two trigger intervals and the growth assumption. Everything
  has a default; a missing config file is not an error.

FILE:
  $XDG_CONFIG_HOME/savings-tracker/config.toml (or ~/.config/...).
  Flags override file values; see cmd/tracker.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tracker configuration.
type Config struct {
	Plan    PlanConfig    `toml:"plan"`
	Storage StorageConfig `toml:"storage"`
	Render  RenderConfig  `toml:"render"`
	Growth  GrowthConfig  `toml:"growth"`
}

// PlanConfig locates the plan document.
type PlanConfig struct {
	Path string `toml:"path"`
}

// StorageConfig locates the state-storage collaborator. When BaseURL
// is empty the tracker persists directly to the local SQLite file.
type StorageConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	DBPath  string `toml:"db_path,omitempty"`
}

// RenderConfig holds the two trigger cadences, in seconds.
type RenderConfig struct {
	CountdownSeconds int `toml:"countdown_seconds"`
	RolloverSeconds  int `toml:"rollover_seconds"`
}

// GrowthConfig holds the projection growth assumption.
type GrowthConfig struct {
	AnnualRate float64 `toml:"annual_rate"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Plan:    PlanConfig{Path: "plan.json"},
		Storage: StorageConfig{DBPath: "savings.db"},
		Render: RenderConfig{
			CountdownSeconds: 1,
			RolloverSeconds:  60,
		},
		Growth: GrowthConfig{AnnualRate: 0.08},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "savings-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "savings-tracker")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path ("" = default location),
// returning defaults if it doesn't exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
