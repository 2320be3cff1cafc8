// Package window runs a game in a native window with Ebitengine, drawing
// entities as filled rectangles at playfield resolution.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Window scale bounds for --scale.
const (
	minScale = 0.5
	maxScale = 4
)

// Options configures a window run.
type Options struct {
	TickRate int
	Scale    float64 // Window size relative to the playfield
	Store    *storage.Store
	Logger   *log.Logger
}

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	hudColor   = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	fontFace   = text.NewGoXFace(basicfont.Face7x13)
)

// palette maps core colors to RGB. The default color is drawn white.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0xff, 0xff, 0xff, 0xff},
	core.ColorBlack:   {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:     {0xe0, 0x40, 0x40, 0xff},
	core.ColorGreen:   {0x40, 0xc0, 0x50, 0xff},
	core.ColorYellow:  {0xf0, 0xd0, 0x40, 0xff},
	core.ColorBlue:    {0x40, 0x70, 0xe0, 0xff},
	core.ColorMagenta: {0xc0, 0x50, 0xc0, 0xff},
	core.ColorCyan:    {0x40, 0xc8, 0xd8, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:  {0xf0, 0x90, 0x30, 0xff},
	core.ColorGray:    {0x90, 0x90, 0x90, 0xff},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// messenger is implemented by games that show an overlay message.
type messenger interface {
	Message() string
}

// App adapts a SpriteGame to ebiten.Game.
type App struct {
	game   registry.SpriteGame
	opts   Options
	logger *log.Logger

	input       core.InputFrame
	state       core.GameState
	lastCursor  int
	resultSaved bool
}

// NewApp resets the game with a screen the size of its playfield, so
// cursor coordinates map one to one.
func NewApp(game registry.SpriteGame, opts Options) *App {
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	opts.Scale = core.ClampF(opts.Scale, minScale, maxScale)
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: opts.TickRate})
	w, h := game.FieldSize()
	if r, ok := game.(registry.Resizable); ok {
		r.Resize(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: opts.TickRate})
	}

	return &App{
		game:       game,
		opts:       opts,
		logger:     logger,
		input:      core.NewInputFrame(),
		state:      game.State(),
		lastCursor: -1,
	}
}

// Update samples input and advances the simulation one frame.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.sampleCursor(ebiten.CursorPosition())
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.input.Set(core.ActionRestart)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.input.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.input.Set(core.ActionRight)
	}

	a.step()
	return nil
}

// sampleCursor feeds the cursor to the game when it moved horizontally
// inside the playfield. Outside the window the paddle keeps its place.
func (a *App) sampleCursor(x, y int) {
	w, h := a.game.FieldSize()
	if !core.NewRect(0, 0, w, h).Contains(x, y) || x == a.lastCursor {
		return
	}
	a.lastCursor = x
	a.input.SetPointer(x, y)
}

// step runs the game on the sampled input and records a finished session.
func (a *App) step() {
	wasOver := a.state.GameOver
	a.state = a.game.Step(a.input).State
	a.input.Clear()

	if wasOver && !a.state.GameOver {
		a.resultSaved = false
	}
	if !a.state.GameOver || a.resultSaved {
		return
	}
	a.resultSaved = true

	a.logger.Info("game over", "game", a.game.ID(), "score", a.state.Score, "won", a.state.Won, "frames", a.state.Frames)
	if a.opts.Store == nil || a.state.Score <= 0 {
		return
	}
	if _, err := a.opts.Store.SaveResult(storage.Result{
		GameID: a.game.ID(),
		Score:  a.state.Score,
		Won:    a.state.Won,
		Frames: a.state.Frames,
	}); err != nil {
		a.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints the entities back to front, then the HUD and any message.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, e := range a.game.Entities() {
		r := e.BoundingBox()
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(e.Visual()), false)
	}

	w, _ := a.game.FieldSize()
	hud := fmt.Sprintf("%s   Score: %d", a.game.Title(), a.state.Score)
	a.drawText(screen, hud, 8, 8)

	if m, ok := a.game.(messenger); ok {
		if msg := m.Message(); msg != "" {
			a.drawCentered(screen, msg, float64(w), 300)
			a.drawCentered(screen, "R - Restart   Q - Quit", float64(w), 324)
		}
	}
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, fontFace, op)
}

func (a *App) drawCentered(screen *ebiten.Image, s string, width, y float64) {
	tw, _ := text.Measure(s, fontFace, 0)
	a.drawText(screen, s, (width-tw)/2, y)
}

// Layout keeps the logical screen at playfield size whatever the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.game.FieldSize()
}

// State returns the last observed game state.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens a window and plays the game until it is closed.
func Run(game registry.SpriteGame, opts Options) error {
	app := NewApp(game, opts)

	scale := app.opts.Scale
	w, h := game.FieldSize()

	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.TickRate)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
