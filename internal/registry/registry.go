// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games contain pure simulation logic with no external dependencies.
// The session host owns timing, serializes calls and cancels timers;
// the platform handles input mapping and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake", "firecats").
	ID() string

	// Title returns a human-readable name for display (e.g., "Snake Cat").
	Title() string

	// Reset seeds the game and returns it to the idle phase.
	Reset(cfg core.RuntimeConfig)

	// Start moves an idle game to playing. No-op in any other phase.
	Start()

	// Restart builds a fresh session state and enters playing.
	Restart()

	// HandlePointerSelect forwards a click on an entity.
	HandlePointerSelect(id core.EntityID)

	// HandleDirectionKey forwards a direction key press or release.
	HandleDirectionKey(dir core.Direction, pressed bool)

	// Timers lists the fixed-interval handlers to run while playing.
	Timers() []core.Timer

	// Snapshot returns a read-only copy of the current session state.
	Snapshot() core.Snapshot

	// DrainEvents returns events produced since the previous call.
	DrainEvents() []core.Event

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)
}

// ViewportAware is implemented by games that size entities from the
// viewport pixel width.
type ViewportAware interface {
	SetViewportWidth(px float64)
}

// Pickable is implemented by games whose entities can be clicked. EntityAt
// maps a screen cell to the entity drawn there.
type Pickable interface {
	EntityAt(screenW, screenH, col, row int) (core.EntityID, bool)
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	info GameInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register makes a game available under id. Games call it from init.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info: GameInfo{ID: id, Title: f().Title()},
		make: f,
	}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
