package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadOptional_MissingFile verifies a missing scrim.yaml is not an error.
func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

// TestLoadOptional_ParsesFile verifies yaml fields land in the config.
func TestLoadOptional_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	data := "title: demo\nwidth: 60\ncolors:\n  accent: \"205\"\n"
	if err := os.WriteFile(filepath.Join(dir, "scrim.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "demo" || cfg.Width != 60 || cfg.Colors.Accent != "205" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

// TestConfig_Resolved verifies defaults fill unset fields and explicit
// values survive.
func TestConfig_Resolved(t *testing.T) {
	cfg := (&Config{Width: 60}).Resolved()
	if cfg.Width != 60 {
		t.Errorf("explicit width overwritten: %d", cfg.Width)
	}
	if cfg.Title == "" || cfg.Colors.Accent == "" || cfg.Colors.Border == "" || cfg.Colors.Dim == "" {
		t.Errorf("expected defaults applied, got %+v", cfg)
	}
}
