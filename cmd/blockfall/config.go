package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way 'play' does and print it as YAML.

The result can be saved to ~/.blockfall/configs/blockfall.yaml and edited.

Examples:
  blockfall config
  blockfall config --difficulty hard
  blockfall config --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	fmt.Printf("# effective gravity: %s\n", cfg.EffectiveGravity())
	return nil
}
