package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick layouts from an interactive menu",
	Long: `Start breakout in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a layout and Tab to
browse the high scores. After a game ends, Esc returns to the menu.

Examples:
  breakout menu
  breakout menu --fps 60
  breakout menu --db ./scores.db`,
	Annotations: map[string]string{annotationInteractive: "true"},
	Run:         runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore(logger)

	err := tui.RunSession(terminalConfig(), tui.Options{
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
