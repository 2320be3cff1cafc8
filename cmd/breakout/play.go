package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout in the terminal",
	Long: `Start playing the given layout (classic when omitted).

Controls:
  Mouse        - Move the paddle
  Left/Right   - Nudge the paddle without a mouse
  P/Space      - Pause
  R            - Restart (after game over)
  Esc          - Quit (after game over or while paused)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.breakout/screenshots

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Configured values
  hard   - Faster ball, narrower paddle

Examples:
  breakout play
  breakout play pyramid --difficulty hard
  breakout play classic --record run.bor
  breakout play --config ./my-breakout.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationInteractive: "true"},
	Run:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	layout := "classic"
	if len(args) == 1 {
		layout = args[0]
	}
	gameID := resolveGameID(layout)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layout)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		RecordPath: flagRecord,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
