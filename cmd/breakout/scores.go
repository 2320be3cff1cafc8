package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores",
	Long: `Display the top 10 results for a layout, or a summary of every
layout that has been played when no layout is given.

Examples:
  breakout scores
  breakout scores classic
  breakout scores pyramid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the stored scores for the layout")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := resolveGameID(args[0])
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return
	}

	if err := printTopScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %s\n", "Rank", "Score", "Result", "Frames", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-6d  %-7s  %-7d  %s\n",
			i+1, entry.Score, result, entry.Frames, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Cleared: %d   Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-22s  %-5s  %-6s  %-7s  %s\n", "Layout", "Best", "Games", "Cleared", "Last played")
	fmt.Printf("  %-22s  %-5s  %-6s  %-7s  %s\n", "------", "----", "-----", "-------", "-----------")

	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-22s  %-5d  %-6d  %-7d  %s\n",
			info.Title, st.HighScore, st.GamesCount, st.Wins, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
