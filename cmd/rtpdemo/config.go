package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the rtpdemo binary.
type Config struct {
	WorldName string `yaml:"world_name"`
	Players   int    `yaml:"players"`
	Workers   int    `yaml:"workers"` // scheduler worker pool size

	Bounds BoundsConfig `yaml:"bounds"`
}

// BoundsConfig is the coordinate window the demo teleports into.
type BoundsConfig struct {
	MinX int32 `yaml:"min_x"`
	MaxX int32 `yaml:"max_x"`
	MinZ int32 `yaml:"min_z"`
	MaxZ int32 `yaml:"max_z"`
}

// DefaultConfig returns demo config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WorldName: "world",
		Players:   4,
		Workers:   2,
		Bounds: BoundsConfig{
			MinX: -1000,
			MaxX: 1000,
			MinZ: -1000,
			MaxZ: 1000,
		},
	}
}

// LoadConfig reads the yaml config at path over the defaults. A missing file
// is not an error; the defaults are used as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
