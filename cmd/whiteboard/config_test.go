package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Title != "whiteboard" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
	if cfg.Canvas.Width != 40 || cfg.Canvas.Height != 12 {
		t.Errorf("expected 40x12 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whiteboard.toml")
	content := `
title = "scratchpad"
dark = true

[canvas]
width = 20
height = 8
zoom_max = 2.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Title != "scratchpad" {
		t.Errorf("expected title scratchpad, got %q", cfg.Title)
	}
	if !cfg.Dark {
		t.Error("expected dark mode enabled")
	}
	if cfg.Canvas.Width != 20 || cfg.Canvas.Height != 8 {
		t.Errorf("expected 20x8 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.ZoomMax != 2.5 {
		t.Errorf("expected zoom_max 2.5, got %v", cfg.Canvas.ZoomMax)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, true},
		{"negative zoom", func(c *Config) { c.Canvas.ZoomMax = -1 }, true},
		{"zero zoom", func(c *Config) { c.Canvas.ZoomMax = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
