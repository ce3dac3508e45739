// Package config loads the demo settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ShapeSphere = "sphere"
	ShapeCube   = "cube"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// Scale divides the window size to get the render resolution.
	Scale int `yaml:"scale"`
}

type Camera struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// Distance from the eye to the shape along -z.
	Distance float32 `yaml:"distance"`
}

type Model struct {
	Shape  string  `yaml:"shape"`
	Slices int     `yaml:"slices"`
	Radius float32 `yaml:"radius"`
	Scale  float32 `yaml:"scale"`
	// Spin is the rotation speed in degrees per second.
	Spin    float32 `yaml:"spin"`
	Texture string  `yaml:"texture"`
}

type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Model  Model  `yaml:"model"`
	// FrameLog is a directory for frame-rate logs; empty disables logging.
	FrameLog string `yaml:"frame_log"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "ES Demo", Scale: 4},
		Camera: Camera{FOV: 60, Near: 1, Far: 20, Distance: 3},
		Model:  Model{Shape: ShapeSphere, Slices: 20, Radius: 0.75, Scale: 1, Spin: 40},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	var cfg Config = Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

var ErrInvalid = errors.New("config: invalid")

func (cfg Config) Validate() error {
	switch {
	case cfg.Window.Width <= 0 || cfg.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, cfg.Window.Width, cfg.Window.Height)
	case cfg.Window.Scale <= 0 || cfg.Window.Width < cfg.Window.Scale || cfg.Window.Height < cfg.Window.Scale:
		return fmt.Errorf("%w: window scale %d", ErrInvalid, cfg.Window.Scale)
	case cfg.Model.Shape != ShapeSphere && cfg.Model.Shape != ShapeCube:
		return fmt.Errorf("%w: unknown shape %q", ErrInvalid, cfg.Model.Shape)
	case cfg.Model.Shape == ShapeSphere && (cfg.Model.Slices < 2 || cfg.Model.Slices > 254):
		return fmt.Errorf("%w: sphere slices %d not in [2, 254]", ErrInvalid, cfg.Model.Slices)
	case cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, cfg.Camera.Near, cfg.Camera.Far)
	}
	return nil
}
