package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			IntervalMS: 500,
			MinimumMS:  80,
		},
		Spawn: SpawnConfig{
			Column: 3,
		},
		Rotation: RotationConfig{
			Kicks: "extended",
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall", "blockfall_classic":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
