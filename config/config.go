// Package config provides configuration loading and access for the demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Maze      MazeConfig      `yaml:"maze"`
	Ghosts    GhostsConfig    `yaml:"ghosts"`
	Workload  WorkloadConfig  `yaml:"workload"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	CellSize    int `yaml:"cell_size"`    // Pixels per maze cell
	PanelHeight int `yaml:"panel_height"` // Info panel height below the maze
	TargetFPS   int `yaml:"target_fps"`
}

// MazeConfig holds maze generation parameters.
type MazeConfig struct {
	Width       int   `yaml:"width"`  // Grid width in cells
	Height      int   `yaml:"height"` // Grid height in cells
	Seed        int64 `yaml:"seed"`
	RandomWalls int   `yaml:"random_walls"` // Extra walls scattered after the bar pattern
}

// GhostsConfig holds AI agent parameters.
type GhostsConfig struct {
	Count       int      `yaml:"count"`
	UpdateEvery int      `yaml:"update_every"` // Frames between AI dispatches in graphical mode
	Names       []string `yaml:"names"`
}

// WorkloadConfig holds the simulated per-agent CPU workload parameters.
// All values are milliseconds.
type WorkloadConfig struct {
	WorkMS int `yaml:"work_ms"` // Initial busy-spin duration per agent update
	MinMS  int `yaml:"min_ms"`
	MaxMS  int `yaml:"max_ms"`
	StepMS int `yaml:"step_ms"` // Adjustment granularity for the +/- keys
}

// DispatchConfig holds worker pool dispatch parameters.
type DispatchConfig struct {
	TimeoutSec  float64 `yaml:"timeout_sec"`   // Per-tick join timeout for the parallel pool
	RaceDelayMS int     `yaml:"race_delay_ms"` // Delay between read and write in the unguarded protocol
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	TimingWindow int `yaml:"timing_window"` // Dispatch duration samples kept for the rolling average
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenWidth  int32 // Maze width in pixels
	ScreenHeight int32 // Maze plus info panel height in pixels
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.Maze.Width < 7 || c.Maze.Height < 7 {
		return fmt.Errorf("maze %dx%d too small, need at least 7x7", c.Maze.Width, c.Maze.Height)
	}
	if c.Ghosts.Count < 1 {
		return fmt.Errorf("ghost count must be at least 1, got %d", c.Ghosts.Count)
	}
	if c.Workload.MinMS > c.Workload.MaxMS {
		return fmt.Errorf("workload min_ms %d exceeds max_ms %d", c.Workload.MinMS, c.Workload.MaxMS)
	}
	if c.Dispatch.TimeoutSec <= 0 {
		return fmt.Errorf("dispatch timeout_sec must be positive, got %g", c.Dispatch.TimeoutSec)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenWidth = int32(c.Maze.Width * c.Screen.CellSize)
	c.Derived.ScreenHeight = int32(c.Maze.Height*c.Screen.CellSize + c.Screen.PanelHeight)

	// Agents beyond the named set fall back to generated names
	for len(c.Ghosts.Names) < c.Ghosts.Count {
		c.Ghosts.Names = append(c.Ghosts.Names, fmt.Sprintf("Ghost-%d", len(c.Ghosts.Names)+1))
	}

	if c.Telemetry.TimingWindow < 1 {
		c.Telemetry.TimingWindow = 30
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
