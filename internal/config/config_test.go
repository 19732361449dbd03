package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBlockfall(GetDefaultYAML("blockfall"))
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultBlockfallConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultBlockfallConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestLoadBlockfallCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  width: 8\n  height: 16\nrotation:\n  kicks: columns\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("board = %dx%d, want 8x16", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Rotation.Kicks != "columns" {
		t.Errorf("kicks = %q, want columns", cfg.Rotation.Kicks)
	}
	// Unset fields keep their defaults
	if cfg.Gravity.IntervalMS != 500 {
		t.Errorf("interval_ms = %d, want 500", cfg.Gravity.IntervalMS)
	}
}

func TestLoadBlockfallCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlockfall(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlockfall(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  column: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlockfall(invalid); err == nil {
		t.Error("spawn column outside the board should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockfallConfig)
		substr string
	}{
		{"tiny board", func(c *BlockfallConfig) { c.Board.Width = 3 }, "at least 4x4"},
		{"zero gravity", func(c *BlockfallConfig) { c.Gravity.IntervalMS = 0 }, "interval_ms"},
		{"negative floor", func(c *BlockfallConfig) { c.Gravity.MinimumMS = -1 }, "minimum_ms"},
		{"spawn left", func(c *BlockfallConfig) { c.Spawn.Column = -1 }, "spawn.column"},
		{"spawn col 0 clips T and L pieces", func(c *BlockfallConfig) { c.Spawn.Column = 0 }, "spawn.column"},
		{"spawn col width-3 clips straight", func(c *BlockfallConfig) { c.Spawn.Column = 7 }, "spawn.column"},
		{"spawn col width-1 clips every kind", func(c *BlockfallConfig) { c.Spawn.Column = 9 }, "spawn.column"},
		{"spawn fits only a wider board", func(c *BlockfallConfig) { c.Board.Width = 4; c.Spawn.Column = 1 }, "spawn.column"},
		{"unknown kicks", func(c *BlockfallConfig) { c.Rotation.Kicks = "srs" }, "rotation.kicks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyBlockfallPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.5},
		{"", 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			cfg.Difficulty.InitialLevel = 0.5
			ApplyBlockfallPreset(&cfg, tt.preset)
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}
}

func TestEffectiveGravity(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	if got := cfg.EffectiveGravity(); got != 500*time.Millisecond {
		t.Errorf("easy gravity = %v, want 500ms", got)
	}

	cfg.Difficulty.InitialLevel = 1.0
	if got := cfg.EffectiveGravity(); got != 250*time.Millisecond {
		t.Errorf("level 1 gravity = %v, want 250ms", got)
	}

	cfg.Difficulty.Scaling.SpeedMultiplier = 100
	if got := cfg.EffectiveGravity(); got != 80*time.Millisecond {
		t.Errorf("clamped gravity = %v, want 80ms floor", got)
	}
}

func TestDifficultyClampsLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{3, 1},
		{-2, 0},
		{0.3, 0.3},
	}
	for _, tt := range tests {
		if got := NewDifficulty(DifficultyConfig{InitialLevel: tt.in}).Level(); got != tt.want {
			t.Errorf("Level() for %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyIgnoresNegativeSpeed(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{InitialLevel: 1, Scaling: ScalingConfig{SpeedMultiplier: -5}})
	if got := d.GravityInterval(500*time.Millisecond, 0); got != 500*time.Millisecond {
		t.Errorf("GravityInterval = %v, want unscaled 500ms", got)
	}
}
