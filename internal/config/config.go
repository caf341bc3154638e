// Package config loads render settings from a JSON file, applies CLI flag
// overrides, and fills in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds render settings for the demo CLI.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	ClearColorR uint8   `json:"clear_color_r"`
	ClearColorG uint8   `json:"clear_color_g"`
	ClearColorB uint8   `json:"clear_color_b"`
	ClearDepth  float32 `json:"clear_depth"`
	OutputPath  string  `json:"output_path"`
}

// Load reads a JSON config file. Fields absent from the file keep their
// zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputPath string
}

// Resolve fills in empty fields with defaults; non-zero CLI flags
// override the config file.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}

	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.ClearDepth <= 0 {
		c.ClearDepth = 1.0
	}
	if c.OutputPath == "" {
		c.OutputPath = "render.webp"
	}
}
