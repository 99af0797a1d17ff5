// Package catcher implements Cat Catcher: fish and bombs fall from the top
// of the screen and the cat below catches the fish and dodges the bombs.
package catcher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "catcher"

// Game implements Cat Catcher.
type Game struct {
	rng        *rand.Rand
	state      State
	events     core.EventQueue
	viewportPx float64
}

// New creates an idle Cat Catcher game.
func New() *Game {
	return &Game{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		state:      State{Phase: core.PhaseIdle, CatcherX: 50, Lives: StartLives},
		viewportPx: defaultViewportPx,
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
	return "Cat Catcher"
}

// Reset seeds the game, picks up the viewport size and returns to the title
// screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.viewportPx = cfg.ViewportPx()
	g.replace(State{Phase: core.PhaseIdle, CatcherX: 50, Lives: StartLives, IDs: g.state.IDs})
}

// SetViewportWidth updates the viewport width used to size the catcher.
func (g *Game) SetViewportWidth(px float64) {
	if px > 0 {
		g.viewportPx = px
	}
}

// Start begins play from the title screen.
func (g *Game) Start() {
	if g.state.Phase != core.PhaseIdle {
		return
	}
	g.replace(NewState(g.state.IDs))
}

// Restart drops every item and starts over with full lives.
func (g *Game) Restart() {
	g.replace(NewState(g.state.IDs))
}

// HandlePointerSelect is a no-op: items are caught, not clicked.
func (g *Game) HandlePointerSelect(core.EntityID) {}

// HandleDirectionKey tracks the left/right keys held down.
func (g *Game) HandleDirectionKey(dir core.Direction, pressed bool) {
	g.apply(SetControl(g.state, dir, pressed))
}

// Timers returns the movement and spawn timers.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{Name: "move", Interval: MoveInterval, Fire: g.step},
		{Name: "spawn", Interval: SpawnInterval, Fire: g.spawn},
	}
}

func (g *Game) step() {
	g.apply(Step(g.state, g.viewportPx))
}

func (g *Game) spawn() {
	g.apply(Spawn(g.state, g.rng))
}

// DrainEvents returns the events produced since the last call.
func (g *Game) DrainEvents() []core.Event {
	return g.events.Drain()
}

// State returns a copy of the session state.
func (g *Game) State() State {
	s := g.state
	s.Items = append([]Item(nil), g.state.Items...)
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
	return core.Status{Phase: g.state.Phase, Score: g.state.Score, Lives: g.state.Lives}
}
