// Package config loads the engine configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/go-panels/internal/debug"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultFile is the configuration file name looked up by the CLI.
const DefaultFile = "panels.toml"

// Measurer names accepted in [text].measurer.
const (
	MeasurerCells  = "cells"
	MeasurerBasic  = "basic"
	MeasurerGoFont = "gofont"
)

// Config represents the panels.toml configuration file
type Config struct {
	Text   TextConfig   `toml:"text"`
	Scroll ScrollConfig `toml:"scroll"`
	Debug  DebugConfig  `toml:"debug"`
}

// TextConfig selects how leaf text is measured.
type TextConfig struct {
	// cells, basic or gofont
	Measurer string `toml:"measurer"`
	// Point size for gofont
	FontSize float64 `toml:"font_size"`
	// Resolution for gofont
	DPI float64 `toml:"dpi"`
	// Multiplier applied to the measurer's line height
	LineSpacing float64 `toml:"line_spacing"`
}

// ScrollConfig holds scroll bar geometry.
type ScrollConfig struct {
	BarThickness   float64 `toml:"bar_thickness"`
	MinThumbLength float64 `toml:"min_thumb_length"`
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	// File the debug log is appended to; empty leaves logging to PANELS_DEBUG
	Log string `toml:"log"`
}

// Default returns the configuration used when no file is present: terminal
// cell measurement with one-cell scroll bars.
func Default() Config {
	return Config{
		Text: TextConfig{
			Measurer:    MeasurerCells,
			FontSize:    12,
			DPI:         72,
			LineSpacing: 1,
		},
		Scroll: ScrollConfig{
			BarThickness:   1,
			MinThumbLength: 1,
		},
	}
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads the configuration at path.
// If the file doesn't exist, returns the default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		debug.Log("config: %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	debug.Log("config: loaded %s (measurer=%s)", path, cfg.Text.Measurer)
	return cfg, nil
}

// Validate checks every setting and reports the first violation.
func (c Config) Validate() error {
	switch c.Text.Measurer {
	case MeasurerCells, MeasurerBasic, MeasurerGoFont:
	default:
		return fmt.Errorf("%w: text.measurer %q (want cells, basic or gofont)", ErrInvalidConfig, c.Text.Measurer)
	}
	if c.Text.Measurer == MeasurerGoFont {
		if !(c.Text.FontSize > 0) {
			return fmt.Errorf("%w: text.font_size %v must be positive", ErrInvalidConfig, c.Text.FontSize)
		}
		if !(c.Text.DPI > 0) {
			return fmt.Errorf("%w: text.dpi %v must be positive", ErrInvalidConfig, c.Text.DPI)
		}
	}
	if !(c.Text.LineSpacing > 0) {
		return fmt.Errorf("%w: text.line_spacing %v must be positive", ErrInvalidConfig, c.Text.LineSpacing)
	}
	if !(c.Scroll.BarThickness >= 0) {
		return fmt.Errorf("%w: scroll.bar_thickness %v must not be negative", ErrInvalidConfig, c.Scroll.BarThickness)
	}
	if !(c.Scroll.MinThumbLength >= 0) {
		return fmt.Errorf("%w: scroll.min_thumb_length %v must not be negative", ErrInvalidConfig, c.Scroll.MinThumbLength)
	}
	return nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
