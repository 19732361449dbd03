package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: blockfall).

Modes:
  blockfall          - Rotation tries sideways kicks, then floor kicks
  blockfall_classic  - Rotation only tries sideways kicks

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  C                - Hold
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back (after game over or while paused)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options scale the gravity interval:
  easy   - Config interval
  normal - Interval x0.77
  hard   - Interval x0.59
  fixed  - Keep the config's initial_level

Examples:
  blockfall play
  blockfall play blockfall_classic
  blockfall play --difficulty hard --seed 7
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "blockfall"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'blockfall list')", gameID)
	}

	// Fail before entering the alt screen
	if _, err := loadConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(game, store, runtimeConfig(), logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := final.State()
	if st.Pieces > 0 {
		fmt.Printf("Score %d, %d lines, %d pieces\n", st.Score, st.Lines, st.Pieces)
	}
	if id := final.LastRunID(); id != "" {
		fmt.Printf("Saved as run %s\n", id)
	}
	return nil
}
