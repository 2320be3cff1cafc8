package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long:  `Shows every built-in block layout with its registry ID.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := len("Layout")
	for _, g := range games {
		if id, _ := breakout.LayoutID(g.ID); len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "Layout", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "------", "-----")

	for _, g := range games {
		id, _ := breakout.LayoutID(g.ID)
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <layout>' to play.")
}
