package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresRun   string
	flagSummary     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best runs of a mode (default: blockfall).

Examples:
  blockfall scores
  blockfall scores blockfall_classic --limit 20
  blockfall scores --all
  blockfall scores --summary
  blockfall scores --run 3f1c9a52-0b7e-4c1e-9a55-6f0d2a1b7c44`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every run instead of the top --limit")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show totals for every mode")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "run", "summary")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresRun != "":
		return printRun(store, flagScoresRun)
	case flagSummary:
		return printSummary(store)
	}

	gameID := "blockfall"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'blockfall list')", err)
	}

	var runs []storage.ScoreEntry
	if flagScoresAll {
		runs, err = store.AllScores(gameID)
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("\nPlay 'blockfall play %s' to set the first high score!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  RANK\tSCORE\tLINES\tPIECES\tDATE\tRUN")
	for i, e := range runs {
		fmt.Fprintf(w, "  %d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, e.Score, e.Lines, e.Pieces, e.CreatedAt.Local().Format("2006-01-02 15:04"), shortID(e.RunID))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d  Games: %d  Average: %.0f  Total lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}

func printRun(store *storage.Store, runID string) error {
	e, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("no run with id %s", runID)
	}
	fmt.Printf("Run     %s\nMode    %s\nScore   %d\nLines   %d\nPieces  %d\nPlayed  %s\n",
		e.RunID, e.GameID, e.Score, e.Lines, e.Pieces, e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tGAMES\tBEST\tAVERAGE\tLINES\tLAST PLAYED")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			fmt.Fprintf(w, "%s\t0\t-\t-\t-\t-\n", info.ID)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%d\t%s\n",
			info.ID, st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
