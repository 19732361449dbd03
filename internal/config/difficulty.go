package config

import (
	"math"
	"time"
)

// Difficulty scales gravity by a level in [0, 1].
type Difficulty struct {
	level      float64
	multiplier float64
}

// NewDifficulty reads the level and multiplier from cfg, clamping the level.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{
		level:      math.Max(0, math.Min(1, cfg.InitialLevel)),
		multiplier: cfg.Scaling.SpeedMultiplier,
	}
}

// Level returns the clamped level.
func (d Difficulty) Level() float64 {
	return d.level
}

// GravityInterval is base / (1 + level*multiplier), never below floor.
// A non-positive speed factor leaves base unscaled.
func (d Difficulty) GravityInterval(base, floor time.Duration) time.Duration {
	speed := 1 + d.level*d.multiplier
	if speed <= 0 {
		speed = 1
	}
	return max(time.Duration(float64(base)/speed), floor)
}
