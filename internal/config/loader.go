package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadBlockfall loads Blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBlockfall(data)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("blockfall.yaml"), filepath.Join("configs", "blockfall.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseBlockfall(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlockfall(defaultBlockfallYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBlockfall decodes YAML on top of the hardcoded defaults so partial
// files only override what they mention.
func parseBlockfall(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured initial level.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// EffectiveGravity returns the gravity interval after difficulty scaling.
func (c BlockfallConfig) EffectiveGravity() time.Duration {
	return NewDifficulty(c.Difficulty).GravityInterval(c.GravityInterval(), time.Duration(c.Gravity.MinimumMS)*time.Millisecond)
}
