package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"lifepad/internal/fill"
	"lifepad/pkg/life"
	"lifepad/pkg/pattern"
)

// Board seeding modes.
const (
	ModeEmpty   = "empty"
	ModeSoup    = "soup"
	ModeNoise   = "noise"
	ModePattern = "pattern"
)

// Config holds the parameters shared by every front end.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Cell    int     `yaml:"cell"`
	TPS     int     `yaml:"tps"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Mode    string  `yaml:"mode"`
	Pattern string  `yaml:"pattern"`
	Paused  bool    `yaml:"paused"`
}

// NewConfig returns the default setup: a 40x40 board of 10-pixel cells
// ticking five times per second, starting empty and running.
func NewConfig() *Config {
	return &Config{
		Width:   40,
		Height:  40,
		Cell:    10,
		TPS:     5,
		Seed:    42,
		Density: 0.25,
		Mode:    ModeEmpty,
		Pattern: "glider",
	}
}

// LoadConfig reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter combinations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Cell <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %g", c.Density)
	}
	switch c.Mode {
	case ModeEmpty, ModeSoup, ModeNoise, ModePattern:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Mode == ModePattern {
		if _, ok := pattern.Get(c.Pattern); !ok {
			return fmt.Errorf("unknown pattern %q, available: %v", c.Pattern, pattern.Names())
		}
	}
	return nil
}

// TickInterval returns the wall-clock duration of one simulation tick.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Populate replaces the board contents according to the configured mode.
// The pause gate is left alone so reseeding while paused stays paused.
func (c *Config) Populate(s *life.Simulation, seed int64) {
	switch c.Mode {
	case ModeSoup:
		fill.Soup(s, seed, c.Density)
	case ModeNoise:
		fill.Noise(s, seed, c.Density)
	case ModePattern:
		s.Clear()
		p, ok := pattern.Get(c.Pattern)
		if !ok {
			return
		}
		w, h := s.Dimensions()
		pw, ph := p.Size()
		p.Stamp(s, (w-pw)/2, (h-ph)/2)
	default:
		s.Clear()
	}
}

// NewSimulation builds a board from the config, seeds it and applies the
// configured pause state.
func (c *Config) NewSimulation() *life.Simulation {
	s := life.NewSimulation(c.Width, c.Height)
	c.Populate(s, c.Seed)
	s.SetPaused(c.Paused)
	return s
}
