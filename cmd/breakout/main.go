// breakout is a block-breaking game for the terminal, a native window and
// SSH clients.
//
// Usage:
//
//	breakout list              - List available layouts
//	breakout play <layout>     - Play a layout in the terminal
//	breakout menu              - Pick layouts interactively
//	breakout window <layout>   - Play a layout in a native window
//	breakout serve             - Start SSH server for remote play
//	breakout scores <layout>   - Show high scores for a layout
//	breakout replay <file>     - Re-simulate a recorded session
//
// Global flags:
//
//	--fps <rate>          - Override the configured frame rate
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Use a custom breakout.yaml
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// annotationInteractive marks commands that own the terminal screen.
const annotationInteractive = "interactive"

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	//nolint:errcheck // Nothing useful to do if the log file cannot be closed
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Clear the wall with a bouncing ball",
	Long: `Breakout is a block-breaking game. Steer the paddle with the mouse,
keep the ball in play and clear every block.

Available commands:
  list     - Show all available layouts
  play     - Play a layout in the terminal
  menu     - Interactive layout picker
  window   - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Verify a recorded session

Examples:
  breakout list
  breakout play pyramid
  breakout play classic --record run.bor
  breakout window --difficulty easy
  breakout serve --ssh :2222
  breakout replay run.bor`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use the configured frame_rate)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout YAML config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup builds the logger and hands the config flags to the game package
// before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if err := checkConfig(flagConfig); err != nil {
		return err
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)

	// Commands that draw on the alternate screen only log to a file.
	if cmd.Annotations[annotationInteractive] == "true" && flagLogFile == "" {
		logger = logging.Discard()
		return nil
	}

	l, closeFn, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "breakout",
	})
	if err != nil {
		return err
	}
	logger, closeLog = l, closeFn
	breakout.SetLogger(logger)
	return nil
}

// checkConfig fails on an explicit --config that cannot be read or does
// not validate. Without the flag the search path may fall back to defaults.
func checkConfig(path string) error {
	if path == "" {
		return nil
	}
	_, err := config.LoadBreakout(path)
	return err
}

// tickRate returns the --fps override or the configured frame rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil || cfg.FrameRate <= 0 {
		return core.DefaultConfig().TickRate
	}
	return cfg.FrameRate
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate()
	return cfg
}

// openStore opens the score database. Play continues without it.
func openStore(l *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		l.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveGameID accepts either a registry ID or a bare layout name.
func resolveGameID(arg string) string {
	if _, ok := breakout.LayoutID(arg); ok {
		return arg
	}
	return breakout.GameID(arg)
}
