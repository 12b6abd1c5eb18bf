package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.ScrollStep != 1 {
		t.Errorf("expected default scroll step 1, got %d", cfg.ScrollStep)
	}
	if cfg.Keys.Quit != "qQ" {
		t.Errorf("expected default quit keys, got %q", cfg.Keys.Quit)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"scroll": {"step": 3},
		"logging": {"level": "debug", "file": "/tmp/midview.log"},
		"keys": {"down": "n", "up": "p"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ScrollStep != 3 {
		t.Errorf("expected scroll step 3, got %d", cfg.ScrollStep)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/midview.log" {
		t.Errorf("expected log file set, got %q", cfg.LogFile)
	}
	if cfg.Keys.Down != "n" || cfg.Keys.Up != "p" {
		t.Errorf("expected rebound keys, got %q/%q", cfg.Keys.Down, cfg.Keys.Up)
	}
	// Untouched keys keep their defaults.
	if cfg.Keys.Quit != "qQ" {
		t.Errorf("expected default quit keys, got %q", cfg.Keys.Quit)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"scroll": `)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadIgnoresNonPositiveStep(t *testing.T) {
	path := writeConfig(t, `{"scroll": {"step": 0}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ScrollStep != 1 {
		t.Errorf("expected non-positive step ignored, got %d", cfg.ScrollStep)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midview", "config.json")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatal("written config is not valid JSON")
	}
	if got := gjson.GetBytes(data, "scroll.step").Int(); got != 1 {
		t.Errorf("expected scroll.step 1, got %d", got)
	}
	if got := gjson.GetBytes(data, "keys.quit").String(); got != "qQ" {
		t.Errorf("expected keys.quit %q, got %q", "qQ", got)
	}

	// Loading the written file round-trips to the defaults.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load of written config failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("round-trip mismatch: %+v vs %+v", cfg, Default())
	}
}

func TestWriteDefaultLeavesExistingFile(t *testing.T) {
	path := writeConfig(t, `{"scroll": {"step": 9}}`)

	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ScrollStep != 9 {
		t.Errorf("existing config was overwritten: got step %d", cfg.ScrollStep)
	}
}
