// Package config loads viewer configuration from YAML with layered
// precedence: built-in defaults, then an optional config file.
package config

import (
	"github.com/ABakker30/sculpture-story-sub001/lattice"
	"github.com/ABakker30/sculpture-story-sub001/story"
)

// Config holds all viewer settings.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// EngineConfig tunes the procedural derivations of a session.
type EngineConfig struct {
	StarCount     int     `yaml:"star_count"`
	Seed          int64   `yaml:"seed"`
	GalaxyScale   float64 `yaml:"galaxy_scale"`
	BondTolerance float64 `yaml:"bond_tolerance"`
	NetworkCap    int     `yaml:"network_cap"`
	CurveTension  float64 `yaml:"curve_tension"`
}

// SnapshotConfig holds offline render settings.
type SnapshotConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
	OutputDir   string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference sculpture's tuning.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			StarCount:     1200,
			Seed:          1,
			GalaxyScale:   3,
			BondTolerance: lattice.DefaultBondTolerance,
			NetworkCap:    1000,
			CurveTension:  0,
		},
		Snapshot: SnapshotConfig{
			Width:       1024,
			Height:      768,
			Supersample: 2,
			OutputDir:   ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the engine section into session parameters.
func (e EngineConfig) Params() story.Params {
	return story.Params{
		StarCount:     e.StarCount,
		Seed:          e.Seed,
		GalaxyScale:   e.GalaxyScale,
		BondTolerance: e.BondTolerance,
		NetworkCap:    e.NetworkCap,
		CurveTension:  e.CurveTension,
	}
}
