package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows every registered mode with its best score.

Records come from the scores database; when it cannot be opened the
modes are listed without them.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	var records map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("listing modes without records", "db", flagDBPath, "err", err)
	} else {
		defer store.Close()
		if records, err = store.GetAllGamesStats(); err != nil {
			logger.Warn("cannot read records", "err", err)
		}
	}

	return printModes(os.Stdout, registry.List(), records)
}

// printModes writes one row per mode. Modes missing from records show dashes.
func printModes(out io.Writer, modes []registry.GameInfo, records map[string]*storage.GameStats) error {
	if len(modes) == 0 {
		_, err := fmt.Fprintln(out, "No modes available.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tTITLE\tGAMES\tBEST")
	for _, m := range modes {
		st, ok := records[m.ID]
		if !ok || st.GamesCount == 0 {
			fmt.Fprintf(w, "%s\t%s\t0\t-\n", m.ID, m.Title)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", m.ID, m.Title, st.GamesCount, st.HighScore)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "\nRun 'blockfall play <mode>' to play.")
	return err
}
