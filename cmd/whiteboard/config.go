package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Title      string       `toml:"title"`
	Dark       bool         `toml:"dark"`
	AutoFocus  bool         `toml:"auto_focus"`
	LicenseKey string       `toml:"license_key"`
	Canvas     CanvasConfig `toml:"canvas"`
}

type CanvasConfig struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	ZoomMax float64 `toml:"zoom_max"`
}

func defaultConfig() Config {
	return Config{
		Title: "whiteboard",
		Canvas: CanvasConfig{
			Width:   40,
			Height:  12,
			ZoomMax: 4,
		},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.ZoomMax < 0 {
		return fmt.Errorf("zoom_max must not be negative")
	}
	return nil
}
