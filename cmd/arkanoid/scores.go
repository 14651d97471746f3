package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top 10 rounds of a board, or a summary of every board
when no board is given.

Examples:
  arkanoid scores
  arkanoid scores arkanoid_hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printAllStats(os.Stdout, store)
	}

	board := args[0]
	if !registry.Exists(board) {
		return fmt.Errorf("unknown board %q, run 'arkanoid list' to see the boards", board)
	}
	return printBoard(os.Stdout, store, board)
}

// printBoard writes the top rounds and statistics of one board.
func printBoard(w io.Writer, store *storage.Store, board string) error {
	game, err := registry.Create(board)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arkanoid play %s' to set the first high score!\n", board)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-10s  %s\n", i+1, entry.Score, entry.Reason, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(board)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Rounds: %d  Cleared: %d  Average: %.1f\n",
		stats.HighScore, stats.Rounds, stats.Cleared, stats.AvgScore)
	return nil
}

// printAllStats writes one summary line per board with recorded rounds.
func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %6s  %7s  %6s  %7s  %s\n", "Board", "Rounds", "Cleared", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-16s  %6d  %7d  %6d  %7.1f  %s\n",
			g.ID, st.Rounds, st.Cleared, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
