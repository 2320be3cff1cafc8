package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options carries the collaborators a game run needs besides the game.
type Options struct {
	// Store receives finished sessions. Nil disables score saving.
	Store *storage.Store

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// RecordPath, when set, is where the session's replay is written.
	RecordPath string
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// tickGen tags tick chains so a model ignores ticks scheduled by a
// model it replaced.
var tickGen atomic.Int64

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       GameKeyMap
	recorder   *replay.Recorder
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int64

	allowBack   bool // Esc returns to the menu instead of doing nothing
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current game over has been handled
	newBest     bool // The last saved result beat the stored high score
}

// NewGameModel resets the game and wraps it for Bubble Tea.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	game.Reset(cfg)

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		gen:        tickGen.Add(1),
	}

	if rec, ok := game.(registry.Recordable); ok && opts.RecordPath != "" {
		m.recorder = replay.NewRecorder(game.ID(), rec.Config())
		rec.SetObserver(m.recorder)
	}

	opts.logger().Debug("game started", "game", game.ID(), "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Every mouse report carries the position; only x reaches the game.
		m.inputFrame.SetPointer(msg.X, msg.Y)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.finish(false)
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.allowBack {
				m.finish(false)
				m.backToMenu = true
				return m, nil
			}
			m.finish(false)
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the session and only adapts the screen mapping.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.resultSaved, m.newBest = false, false
		m.opts.logger().Debug("game restarted", "game", m.game.ID())
	}
	if m.gameState.GameOver && !m.resultSaved {
		m.finish(true)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// finish persists the session once: the score on game over and the replay
// on game over or exit.
func (m *GameModel) finish(gameOver bool) {
	if m.resultSaved {
		return
	}
	if !gameOver && m.gameState.Frames == 0 {
		return
	}
	m.resultSaved = true

	st := m.gameState
	logger := m.opts.logger()

	if gameOver {
		logger.Info("game over",
			"game", m.game.ID(),
			"score", st.Score,
			"won", st.Won,
			"frames", st.Frames,
		)
		if m.opts.Store != nil && st.Score > 0 {
			m.saveResult(st)
		}
	}

	m.writeReplay()
}

func (m *GameModel) writeReplay() {
	rec, ok := m.game.(registry.Recordable)
	if !ok || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}

	st := m.gameState
	f := m.recorder.File(replay.Result{
		Frames:   st.Frames,
		Score:    st.Score,
		Won:      st.Won,
		GameOver: st.GameOver,
		Hash:     rec.StateHash(),
	})

	logger := m.opts.logger()
	if err := replay.Save(m.opts.RecordPath, f); err != nil {
		logger.Warn("could not save replay", "path", m.opts.RecordPath, "error", err)
		return
	}
	logger.Info("replay saved", "path", m.opts.RecordPath, "frames", len(f.Pointers))
}

// saveResult stores a finished game and notes whether it set a new best.
func (m *GameModel) saveResult(st core.GameState) {
	logger := m.opts.logger()
	store := m.opts.Store

	best, err := store.HighScore(m.game.ID())
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}
	_, err = store.SaveResult(storage.Result{
		GameID: m.game.ID(),
		Score:  st.Score,
		Won:    st.Won,
		Frames: st.Frames,
	})
	if err != nil {
		logger.Warn("could not save score", "error", err)
		return
	}
	m.newBest = st.Score > best
	if m.newBest {
		logger.Info("new high score", "game", m.game.ID(), "score", st.Score, "previous", best)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Motion without a pressed button moves the paddle
	)

	_, err := p.Run()
	return err
}
