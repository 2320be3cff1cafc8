package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [layout]",
	Short: "Play a layout in a native window",
	Long: `Open an 800x600 window and play with the hardware pointer.
The cursor is hidden while it is over the window.

Controls:
  Mouse        - Move the paddle
  P/Space      - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit

Examples:
  breakout window
  breakout window invaders --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 playfield")
}

func runWindow(_ *cobra.Command, args []string) {
	layout := "classic"
	if len(args) == 1 {
		layout = args[0]
	}

	game, err := registry.Create(resolveGameID(layout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	sprites, ok := game.(registry.SpriteGame)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s cannot be drawn in a window\n", game.ID())
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := window.Run(sprites, window.Options{
		TickRate: tickRate(),
		Scale:    flagScale,
		Store:    store,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
