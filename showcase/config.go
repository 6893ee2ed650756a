package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional scrim.yaml showcase configuration.
type Config struct {
	Title  string      `yaml:"title,omitempty"`
	Width  int         `yaml:"width,omitempty"`
	Colors ColorConfig `yaml:"colors"`
}

// ColorConfig holds lipgloss color values (ANSI codes or hex strings).
type ColorConfig struct {
	Accent string `yaml:"accent,omitempty"`
	Border string `yaml:"border,omitempty"`
	Dim    string `yaml:"dim,omitempty"`
}

// LoadOptional reads scrim.yaml from dir if present. A missing file is not
// an error; the zero Config is returned.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "scrim.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read scrim.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scrim.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolved fills in defaults for unset fields.
func (c *Config) Resolved() Config {
	out := *c
	if out.Title == "" {
		out.Title = "scrim showcase"
	}
	if out.Width <= 0 {
		out.Width = 44
	}
	if out.Colors.Accent == "" {
		out.Colors.Accent = "62"
	}
	if out.Colors.Border == "" {
		out.Colors.Border = "240"
	}
	if out.Colors.Dim == "" {
		out.Colors.Dim = "243"
	}
	return out
}
