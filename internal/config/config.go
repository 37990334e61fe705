// Package config holds the JSON configuration shared by the demo commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	OutputDir   string  `json:"output_dir"`
	Texture     string  `json:"texture"`
	Size        int     `json:"size"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	TiltDeg     float64 `json:"tilt_deg"`
	Workers     int     `json:"workers"`
}

// Flags mirrors the CLI overrides for Resolve.
type Flags struct {
	OutputDir string
	Texture   string
	Size      int
	Frames    int
	Workers   int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
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

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.TiltDeg == 0 {
		c.TiltDeg = 20
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
