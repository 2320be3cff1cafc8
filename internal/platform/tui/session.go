package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScoreboard
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for `breakout menu` and for SSH sessions.
type SessionModel struct {
	opts       Options
	config     core.RuntimeConfig
	username   string
	state      sessionState
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, username string) SessionModel {
	return SessionModel{
		opts:     opts,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.opts.logger().Error("cannot create game", "error", err)
			m.menu = NewMenuModel(m.opts.Store, m.config)
			return m, nil
		}

		m.opts.logger().Info("game selected", "user", m.username, "game", game.ID())

		gameModel := NewGameModel(game, m.config, m.opts)
		gameModel.allowBack = true
		m.gameModel = &gameModel
		m.state = stateGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.state = stateMenu
		m.menu = NewMenuModel(m.opts.Store, m.config) // Refresh best scores
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.state = stateMenu
		m.menu = NewMenuModel(m.opts.Store, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.gameModel.View()
	case stateScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, "local"),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
