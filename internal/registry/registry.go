// Package registry provides a registry of game factories. Games register
// themselves in init() functions so the CLI and the SSH server can discover
// and instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// Game is the interface the platform drives. Implementations contain pure
// simulation logic with no terminal or storage dependencies.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score rows.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again on restart; the RuntimeConfig supplies screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. The renderer
	// is a pure consumer; Render must not mutate simulation state.
	Render(dst *core.Screen)

	// State returns the platform-visible game state.
	State() core.GameState
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory. Typically called from a game package's
// init(). Panics on duplicate IDs since that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns the registered game IDs, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates a new game by its ID.
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
