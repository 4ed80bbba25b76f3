// Package config handles cub3r configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	Background [3]float32 `yaml:"background"`
}

// PuzzleConfig holds cube settings.
type PuzzleConfig struct {
	Step       float32 `yaml:"slerp_step"`  // Progress per tick, 0.05 = 20 ticks per turn
	Spacing    float32 `yaml:"spacing"`     // Gap between pieces in grid units
	PieceScale float32 `yaml:"piece_scale"` // Edge length of one piece
	Moves      string  `yaml:"moves"`       // Sequence played on start, e.g. "R U R' U'"
}

// CameraConfig holds the orbit camera settings.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Yaw      float32 `yaml:"yaw"`   // Degrees
	Pitch    float32 `yaml:"pitch"` // Degrees
	FOV      float32 `yaml:"fov"`   // Vertical, degrees
}

// LightingConfig holds the directional light settings.
type LightingConfig struct {
	Longitude float32 `yaml:"longitude"` // Degrees, direction of the light around the cube
	Latitude  float32 `yaml:"latitude"`  // Degrees above the horizon
	Ambient   float32 `yaml:"ambient"`
	Diffuse   float32 `yaml:"diffuse"`
}

// StorageConfig holds the session database settings.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // Empty means cub3r.db in the config directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			Background: [3]float32{0.12, 0.12, 0.14},
		},
		Puzzle: PuzzleConfig{
			Step:       0.05,
			Spacing:    0.04,
			PieceScale: 0.96,
		},
		Camera: CameraConfig{
			Distance: 9,
			Yaw:      -35,
			Pitch:    30,
			FOV:      45,
		},
		Lighting: LightingConfig{
			Longitude: 30,
			Latitude:  50,
			Ambient:   0.35,
			Diffuse:   0.75,
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DBPath returns the session database path.
func (c *Config) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(ConfigDir(), "cub3r.db")
}

// minStep matches the 4-decimal precision the cube keeps progress at.
const minStep = 1e-4

// Validate checks that values are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Puzzle.Step < minStep || c.Puzzle.Step > 1 {
		errs = append(errs, fmt.Errorf("puzzle: slerp_step %v outside [%v, 1]", c.Puzzle.Step, minStep))
	}
	if c.Puzzle.PieceScale <= 0 {
		errs = append(errs, fmt.Errorf("puzzle: piece_scale must be positive"))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %v outside (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Distance <= 0 {
		errs = append(errs, fmt.Errorf("camera: distance must be positive"))
	}
	return errors.Join(errs...)
}
