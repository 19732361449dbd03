package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second
	Seed     int64 // RNG seed; the platform picks one from the clock when 0
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickInterval is the simulated time covered by one Step.
// A non-positive TickRate counts as DefaultTickRate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Lines    int // Rows cleared
	Pieces   int // Pieces locked
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Step.
type StepResult struct {
	State   GameState
	Cleared int // Rows cleared during this step
}
