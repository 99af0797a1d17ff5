// Package snake implements Snake Cat: a cat steered around a 20x20 grid that
// grows by one segment for every mouse it eats.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "snake"

// Game implements the Snake Cat game on top of the pure State functions.
type Game struct {
	rng    *rand.Rand
	state  State
	events core.EventQueue
}

// New creates an idle Snake Cat game.
func New() *Game {
	return &Game{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		state: State{Phase: core.PhaseIdle},
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake Cat"
}

// Reset seeds the game and returns it to the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.replace(State{Phase: core.PhaseIdle, IDs: g.state.IDs})
}

// Start begins play from the title screen.
func (g *Game) Start() {
	if g.state.Phase != core.PhaseIdle {
		return
	}
	g.replace(NewState(g.rng, g.state.IDs))
}

// Restart throws the current session away and starts a fresh one.
func (g *Game) Restart() {
	g.replace(NewState(g.rng, g.state.IDs))
}

// HandlePointerSelect is a no-op: Snake Cat has nothing to click.
func (g *Game) HandlePointerSelect(core.EntityID) {}

// HandleDirectionKey steers the snake on key-down; key-up is ignored.
func (g *Game) HandleDirectionKey(dir core.Direction, pressed bool) {
	if !pressed {
		return
	}
	g.apply(Steer(g.state, dir))
}

// Timers returns the move timer.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{Name: "move", Interval: MoveInterval, Fire: g.tick},
	}
}

func (g *Game) tick() {
	g.apply(Move(g.state, g.rng))
}

// DrainEvents returns the events produced since the last call.
func (g *Game) DrainEvents() []core.Event {
	return g.events.Drain()
}

// State returns a copy of the session state.
func (g *Game) State() State {
	s := g.state
	s.Body = append([]Segment(nil), g.state.Body...)
	return s
}

// apply installs the next state and records what changed.
func (g *Game) apply(next State) {
	before := g.status()
	g.state = next
	g.events.Push(core.DiffEvents(ID, before, g.status())...)
}

// replace installs a brand-new session; only the phase change is reported.
func (g *Game) replace(next State) {
	from := g.state.Phase
	g.state = next
	if from != next.Phase {
		g.events.Push(core.Event{Kind: core.EventPhaseChanged, Game: ID, From: from, To: next.Phase})
	}
}

func (g *Game) status() core.Status {
	return core.Status{Phase: g.state.Phase, Score: g.state.Score}
}
