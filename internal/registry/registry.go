// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platforms
// (terminal, window, SSH) to discover and instantiate them without
// hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every playable layout implements.
// Games contain pure logic with no platform dependencies (no Bubble Tea,
// no Ebitengine). The platform handles input sampling, timing and drawing.
type Game interface {
	// ID returns a unique identifier (e.g. "breakout", "breakout_pyramid").
	// Used for CLI commands, replay files and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the platform's screen dimensions, which
	// the game uses to map pointer coordinates onto its playfield.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// Input carries platform-level actions and the sampled pointer.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// SpriteGame is implemented by games that can expose their entities in
// playfield coordinates, for platforms that draw pixels instead of cells.
type SpriteGame interface {
	Game

	// Entities returns everything to draw this frame, back to front.
	Entities() []core.Entity

	// FieldSize returns the playfield dimensions the entities live in.
	FieldSize() (width, height int)
}

// Resizable is implemented by games that can adapt to a new platform size
// without restarting.
type Resizable interface {
	Resize(cfg core.RuntimeConfig)
}

// FrameObserver receives the pointer value fed to every simulated frame.
type FrameObserver interface {
	ObserveFrame(pointerX int)

	// ObserveReset is called when the game starts over with a fresh session.
	ObserveReset()
}

// Recordable is implemented by games whose sessions can be recorded and
// re-simulated from their pointer stream.
type Recordable interface {
	Game

	SetObserver(o FrameObserver)

	// Config returns the configuration the current session was built from.
	Config() config.BreakoutConfig

	// StateHash fingerprints the current session state.
	StateHash() uint64
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns ErrUnknownGame if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
