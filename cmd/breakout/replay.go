package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Load a replay written by 'breakout play --record', run the recorded
pointer positions through a fresh session and check that it ends exactly as
it did when it was recorded.

Examples:
  breakout replay run.bor`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	f, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game:      %s\n", f.GameID)
	fmt.Printf("Recorded:  %s\n", f.RecordedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Frames:    %d (%s at %d fps)\n", len(f.Pointers), f.Duration(), f.Config.FrameRate)
	fmt.Printf("Result:    %s\n", f.Result)

	got, err := replay.Verify(f)
	switch {
	case errors.Is(err, replay.ErrMismatch):
		fmt.Printf("Replayed:  %s\n", got)
		fmt.Fprintln(os.Stderr, "Error: replay diverged from the recording")
		logger.Warn("replay mismatch", "file", args[0], "recorded", f.Result.String(), "replayed", got.String())
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replayed:  %s\n", got)
	fmt.Println("OK: replay matches the recording")
}
