package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for terminal rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// BlockGlyphs alternate by column so neighbouring blocks stay distinguishable
// once several of them share a terminal cell.
var BlockGlyphs = []rune{'█', '▓'}

// GameIDPrefix is the registry ID of the classic layout; other layouts
// append "_<layout>".
const GameIDPrefix = "breakout"

// MessageY is the playfield row the end-of-game message is centered on.
const MessageY = 300

// Terminal grids smaller than this cannot show the playfield meaningfully.
const (
	minScreenW = 32
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// logger reports configuration problems hit on Reset.
var logger = logging.Discard()

// SetLogger sets the logger games report to. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// GameID returns the registry ID for a layout.
func GameID(layoutID string) string {
	if layoutID == ClassicLayoutID || layoutID == "" {
		return GameIDPrefix
	}
	return GameIDPrefix + "_" + layoutID
}

// LayoutID is the inverse of GameID.
func LayoutID(gameID string) (string, bool) {
	if gameID == GameIDPrefix {
		return ClassicLayoutID, true
	}
	rest, ok := strings.CutPrefix(gameID, GameIDPrefix+"_")
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

// Game adapts a Session to registry.Game. It owns the platform-facing
// concerns the simulation does not: pointer scaling, pause, restart and
// terminal rendering.
type Game struct {
	layoutID string
	title    string

	runtime  core.RuntimeConfig
	cfg      config.BreakoutConfig
	session  *Session
	observer registry.FrameObserver

	pointerX       int // Playfield units
	paused         bool
	screenTooSmall bool
}

// New creates a game for the given layout. Reset must be called before Step.
func New(layoutID string) *Game {
	title := "Breakout"
	if layoutID != ClassicLayoutID {
		for _, l := range BuiltinLayouts() {
			if l.ID == layoutID {
				title = "Breakout: " + l.Name
			}
		}
	}
	return &Game{layoutID: layoutID, title: title}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID(g.layoutID)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("using default config", "game", g.ID(), "error", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.restart()
}

// ResetWithConfig starts a fresh session from an explicit configuration,
// bypassing the config search path.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.restart()
}

// Resize updates the platform dimensions without touching the session.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

func (g *Game) restart() {
	s, err := NewSessionForLayout(g.cfg, g.layoutID)
	if err != nil {
		// Only reachable for a layout ID that was never registered.
		s = NewSession(g.cfg, FullLayout(g.cfg.Blocks.Rows, g.cfg.Blocks.Columns))
	}
	g.session = s
	g.pointerX = 0
	g.paused = false
	if g.observer != nil {
		g.observer.ObserveReset()
	}
}

// Step handles platform actions and runs one simulation frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.GameOver() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.updatePointer(in)

	if g.observer != nil {
		g.observer.ObserveFrame(g.pointerX)
	}
	g.session.Step(g.pointerX)

	return core.StepResult{State: g.State()}
}

// updatePointer converts the platform pointer to playfield units and applies
// keyboard nudges for clients that cannot report the mouse.
func (g *Game) updatePointer(in core.InputFrame) {
	field := g.session.Playfield()

	if in.HasPointer && g.runtime.ScreenW > 0 {
		g.pointerX = in.PointerX * field.Width / g.runtime.ScreenW
	}

	nudge := field.Width / 40
	if in.Has(core.ActionLeft) {
		g.pointerX -= nudge
	}
	if in.Has(core.ActionRight) {
		g.pointerX += nudge
	}
	if in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		g.pointerX = core.Clamp(g.pointerX, 0, field.Width-g.session.Paddle().BoundingBox().W)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Frames:   g.session.Frame(),
		GameOver: g.session.GameOver(),
		Won:      g.session.Won(),
		Paused:   g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Entities implements registry.SpriteGame.
func (g *Game) Entities() []core.Entity {
	return g.session.Entities()
}

// FieldSize implements registry.SpriteGame.
func (g *Game) FieldSize() (int, int) {
	f := g.session.Playfield()
	return f.Width, f.Height
}

// SetObserver implements registry.Recordable.
func (g *Game) SetObserver(o registry.FrameObserver) {
	g.observer = o
}

// Config implements registry.Recordable.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// StateHash implements registry.Recordable.
func (g *Game) StateHash() uint64 {
	snap := g.session.Snapshot()
	return snap.Hash()
}

// Message returns the overlay text for the current state, if any.
func (g *Game) Message() string {
	switch {
	case g.session.Won():
		return "YOU WIN"
	case g.session.GameOver():
		return "GAME OVER"
	case g.paused:
		return "PAUSED"
	}
	return ""
}

// Render draws the current game state to the screen. Row 0 holds the HUD;
// the playfield is scaled onto the rows below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	for _, b := range g.session.Blocks().All() {
		glyph := BlockGlyphs[b.Col%len(BlockGlyphs)]
		dst.FillRect(g.toCells(dst, b.BoundingBox()), glyph, b.Visual())
	}

	p := g.session.Paddle()
	dst.FillRect(g.toCells(dst, p.BoundingBox()), PaddleChar, p.Visual())

	ball := g.session.Ball()
	r := g.toCells(dst, ball.BoundingBox())
	dst.SetCell(r.X, r.Y, core.Cell{Rune: BallChar, Color: ball.Visual()})

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.session.Score()))
	dst.DrawTextCentered(0, g.title)

	blocks := fmt.Sprintf("Blocks: %d/%d", g.session.Blocks().Len(), g.session.BlocksTotal())
	dst.DrawText(dst.Width()-len(blocks)-1, 0, blocks)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	msg := g.Message()
	if msg == "" {
		return
	}

	y := g.toCells(dst, core.NewRect(0, MessageY, 1, 1)).Y
	dst.DrawTextCentered(y, msg)

	if g.session.GameOver() {
		dst.DrawTextCentered(y+2, "R - Restart   Q - Quit")
	}
}

// toCells maps a playfield rectangle onto the terminal rows below the HUD.
// Every visible entity covers at least one cell.
func (g *Game) toCells(dst *core.Screen, r core.Rect) core.Rect {
	field := g.session.Playfield()
	cols := float64(dst.Width())
	rows := float64(dst.Height() - 1)
	sx := cols / float64(field.Width)
	sy := rows / float64(field.Height)

	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y)*sy)) + 1
	x1 := int(math.Ceil(float64(r.Right()) * sx))
	y1 := int(math.Ceil(float64(r.Bottom())*sy)) + 1

	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func init() {
	registry.Register(GameIDPrefix, func() registry.Game {
		return New(ClassicLayoutID)
	})
	for _, l := range BuiltinLayouts() {
		id := l.ID
		registry.Register(GameID(id), func() registry.Game {
			return New(id)
		})
	}
}
