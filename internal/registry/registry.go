// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface every game variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input translation, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "bricks").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again after the player acknowledges the end
	// of a session.
	Reset(cfg core.RuntimeConfig)

	// HandleInput applies a host input event. Called between ticks.
	HandleInput(ev core.InputEvent)

	// Step advances the simulation by one fixed tick.
	Step() core.StepResult

	// Acknowledge tells the game the player dismissed the end-of-session
	// announcement.
	Acknowledge()

	// Render draws the current game state onto the surface.
	Render(dst core.Surface)

	// Size returns the logical surface size the game draws in.
	Size() (w, h float64)

	// Hints tell the platform how to drive the game.
	Hints() core.HostHints

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new, not yet reset, game instance.
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

	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
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
