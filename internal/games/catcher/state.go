package catcher

import (
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const (
	CatcherWidthPx = 100.0 // Catcher width in viewport pixels
	CatcherSpeed   = 2.0   // Percent of viewport width per tick
	StartLives     = 5
	MoveInterval   = 50 * time.Millisecond
	SpawnInterval  = 2200 * time.Millisecond
	SpawnY         = -10.0
	CatchLine      = 90.0 // Items crossing this line are caught or missed
	TargetChance   = 0.7
	TargetPoints   = 10
	HazardPenalty  = 5

	// defaultViewportPx is used until the host reports a width.
	defaultViewportPx = 800.0
)

// ItemKind discriminates falling items.
type ItemKind string

const (
	KindTarget ItemKind = "target" // A fish: catch it
	KindHazard ItemKind = "hazard" // A bomb: let it fall
)

// Item is one falling object. X and Y are percentages of the viewport.
type Item struct {
	ID    core.EntityID
	Kind  ItemKind
	X, Y  float64
	Speed float64 // Percent per tick
}

// Controls holds the directions currently held down.
type Controls struct {
	Left, Right bool
}

// State is the complete Cat Catcher session state.
type State struct {
	Phase    core.Phase
	CatcherX float64 // Catcher center, percent of viewport width
	Lives    int
	Score    int
	Items    []Item // Spawn order
	Controls Controls
	IDs      core.IDSequence
}

// NewState returns a playing session with the catcher centered, full lives
// and no items.
func NewState(ids core.IDSequence) State {
	return State{
		Phase:    core.PhasePlaying,
		CatcherX: 50,
		Lives:    StartLives,
		IDs:      ids,
	}
}

// CatcherWidth converts the catcher's pixel width into percent of the given
// viewport width.
func CatcherWidth(viewportPx float64) float64 {
	if viewportPx <= 0 {
		viewportPx = defaultViewportPx
	}
	return min(CatcherWidthPx*100/viewportPx, 100)
}
