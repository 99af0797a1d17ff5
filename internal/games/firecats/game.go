// Package firecats implements Fire Cats: five burning cats bounce around the
// screen and the player has one minute to click every one of them out.
package firecats

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "firecats"

// Game implements Fire Cats.
type Game struct {
	rng    *rand.Rand
	state  State
	events core.EventQueue
}

// New creates an idle Fire Cats game.
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
	return "Fire Cats"
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

// Restart reseeds five new cats and resets score and time.
func (g *Game) Restart() {
	g.replace(NewState(g.rng, g.state.IDs))
}

// HandlePointerSelect extinguishes the selected cat.
func (g *Game) HandlePointerSelect(id core.EntityID) {
	g.apply(Extinguish(g.state, id))
}

// HandleDirectionKey is a no-op: cats are clicked, not steered.
func (g *Game) HandleDirectionKey(core.Direction, bool) {}

// Timers returns the movement and countdown timers.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{Name: "move", Interval: MoveInterval, Fire: g.move},
		{Name: "countdown", Interval: CountdownInterval, Fire: g.countdown},
	}
}

func (g *Game) move() {
	g.apply(Move(g.state))
}

func (g *Game) countdown() {
	g.apply(Countdown(g.state))
}

// DrainEvents returns the events produced since the last call.
func (g *Game) DrainEvents() []core.Event {
	return g.events.Drain()
}

// State returns a copy of the session state.
func (g *Game) State() State {
	s := g.state
	s.Cats = append([]Cat(nil), g.state.Cats...)
	return s
}

func (g *Game) apply(next State) {
	before := g.status()
	g.state = next
	g.events.Push(core.DiffEvents(ID, before, g.status())...)
}

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
