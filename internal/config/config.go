// Package config provides YAML-based game configuration loading and
// difficulty management for Blockfall.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// BlockfallConfig contains all configuration for a Blockfall session.
// Every value is fixed when a session is created.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines automatic drop timing.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Base time between one-row drops
	MinimumMS  int `yaml:"minimum_ms"`  // Floor after difficulty scaling
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Column int `yaml:"column"`
}

// RotationConfig selects the wall-kick table.
type RotationConfig struct {
	Kicks string `yaml:"kicks"` // "extended" or "columns"
}

// DifficultyConfig scales the gravity interval once, at session start.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. An empty name means "keep the config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// GravityInterval returns the base gravity interval as a duration.
func (c BlockfallConfig) GravityInterval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Validate checks that the configuration can build a session.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Gravity.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS))
	}
	if c.Gravity.MinimumMS < 0 {
		errs = append(errs, fmt.Errorf("gravity.minimum_ms must not be negative, got %d", c.Gravity.MinimumMS))
	}
	if c.Spawn.Column < 0 || c.Spawn.Column >= c.Board.Width {
		errs = append(errs, fmt.Errorf("spawn.column %d outside board width %d", c.Spawn.Column, c.Board.Width))
	} else if blocked := core.SpawnBlocked(c.Board.Width, c.Board.Height, c.Spawn.Column); len(blocked) > 0 {
		errs = append(errs, fmt.Errorf("spawn.column %d leaves %v without room on a %dx%d board",
			c.Spawn.Column, blocked, c.Board.Width, c.Board.Height))
	}
	switch c.Rotation.Kicks {
	case "", "extended", "columns":
	default:
		errs = append(errs, fmt.Errorf("rotation.kicks %q is not extended or columns", c.Rotation.Kicks))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid blockfall config: %w", err)
	}
	return nil
}
