// Package config loads the pager's JSON configuration file.
//
// The file lives at <user config dir>/midview/config.json unless a path
// is given explicitly. A missing file yields the defaults; a malformed
// one is an error so typos surface before the terminal is switched into
// the alternate screen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds the user-adjustable settings.
type Config struct {
	// ScrollStep is the number of lines moved per up/down keypress.
	ScrollStep int

	// LogLevel and LogFile control debug logging. Logging stays off
	// unless a file is configured; stderr is unusable while paging.
	LogLevel string
	LogFile  string

	Keys KeyConfig
}

// KeyConfig lists the rebindable keys per action. Each entry is a string
// whose runes all trigger the action; special keys (arrows, page keys,
// Ctrl+C) are fixed and not configurable.
type KeyConfig struct {
	Quit     string
	Down     string
	Up       string
	PageDown string
	PageUp   string
	Top      string
	Bottom   string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ScrollStep: 1,
		LogLevel:   "info",
		Keys: KeyConfig{
			Quit:     "qQ",
			Down:     "j",
			Up:       "k",
			PageDown: " f",
			PageUp:   "b",
			Top:      "g",
			Bottom:   "G",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "midview", "config.json"), nil
}

// Load reads the configuration at path. A missing file is not an error;
// the defaults are returned. Unknown keys are ignored, absent keys keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config %s: invalid JSON", path)
	}

	cfg := Default()
	if v := gjson.GetBytes(data, "scroll.step"); v.Exists() {
		if step := int(v.Int()); step > 0 {
			cfg.ScrollStep = step
		}
	}
	if v := gjson.GetBytes(data, "logging.level"); v.Exists() {
		cfg.LogLevel = v.String()
	}
	if v := gjson.GetBytes(data, "logging.file"); v.Exists() {
		cfg.LogFile = v.String()
	}

	loadKey(data, "keys.quit", &cfg.Keys.Quit)
	loadKey(data, "keys.down", &cfg.Keys.Down)
	loadKey(data, "keys.up", &cfg.Keys.Up)
	loadKey(data, "keys.pageDown", &cfg.Keys.PageDown)
	loadKey(data, "keys.pageUp", &cfg.Keys.PageUp)
	loadKey(data, "keys.top", &cfg.Keys.Top)
	loadKey(data, "keys.bottom", &cfg.Keys.Bottom)

	return cfg, nil
}

func loadKey(data []byte, path string, dst *string) {
	if v := gjson.GetBytes(data, path); v.Exists() {
		*dst = v.String()
	}
}

// WriteDefault materializes the default configuration at path, creating
// parent directories as needed. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	cfg := Default()
	entries := []struct {
		path  string
		value any
	}{
		{"scroll.step", cfg.ScrollStep},
		{"logging.level", cfg.LogLevel},
		{"keys.quit", cfg.Keys.Quit},
		{"keys.down", cfg.Keys.Down},
		{"keys.up", cfg.Keys.Up},
		{"keys.pageDown", cfg.Keys.PageDown},
		{"keys.pageUp", cfg.Keys.PageUp},
		{"keys.top", cfg.Keys.Top},
		{"keys.bottom", cfg.Keys.Bottom},
	}

	var data []byte
	var err error
	for _, e := range entries {
		data, err = sjson.SetBytes(data, e.path, e.value)
		if err != nil {
			return fmt.Errorf("write config %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
