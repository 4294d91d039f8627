// Package config loads the YAML configuration shared by the stackdrop
// commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every configurable value. Command-line flags take precedence
// over values read from a file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Stress StressConfig `yaml:"stress"`
	View   ViewConfig   `yaml:"view"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// StressConfig configures the stress command's random workload.
type StressConfig struct {
	Duration time.Duration `yaml:"duration"`
	Pieces   int           `yaml:"pieces"` // moves per generated line
	Lines    int           `yaml:"lines"`  // distinct generated lines
	Seed     uint64        `yaml:"seed"`
}

// ViewConfig configures the stackview window.
type ViewConfig struct {
	CellSize     int      `yaml:"cell_size"`
	VisibleRows  int      `yaml:"visible_rows"`
	TicksPerMove int      `yaml:"ticks_per_move"`
	Palette      []string `yaml:"palette"` // one hex color per shape, catalog order
	Inspector    bool     `yaml:"inspector"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Stress: StressConfig{
			Duration: 5 * time.Second,
			Pieces:   40,
			Lines:    1000,
			Seed:     1,
		},
		View: ViewConfig{
			CellSize:     24,
			VisibleRows:  24,
			TicksPerMove: 20,
			Palette: []string{
				"#f0c419", "#e74c3c", "#2ecc71", "#9b59b6",
				"#3498db", "#e67e22", "#1abc9c",
			},
			Inspector: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if c.Stress.Duration <= 0 {
		errs = append(errs, errors.New("stress.duration must be positive"))
	}
	if c.Stress.Pieces <= 0 {
		errs = append(errs, errors.New("stress.pieces must be positive"))
	}
	if c.Stress.Lines <= 0 {
		errs = append(errs, errors.New("stress.lines must be positive"))
	}

	if c.View.CellSize <= 0 {
		errs = append(errs, errors.New("view.cell_size must be positive"))
	}
	if c.View.VisibleRows <= 0 {
		errs = append(errs, errors.New("view.visible_rows must be positive"))
	}
	if c.View.TicksPerMove <= 0 {
		errs = append(errs, errors.New("view.ticks_per_move must be positive"))
	}
	if len(c.View.Palette) != 7 {
		errs = append(errs, fmt.Errorf("view.palette needs 7 colors, got %d", len(c.View.Palette)))
	}

	return errors.Join(errs...)
}
