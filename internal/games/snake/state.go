package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const (
	GridSize     = 20                     // The board is GridSize x GridSize cells
	MoveInterval = 150 * time.Millisecond // One snake move per interval
	MousePoints  = 10                     // Score for eating the mouse
)

// startCell is where a fresh snake spawns.
var startCell = Point{X: 10, Y: 10}

// offGrid marks a mouse that could not be placed.
var offGrid = Point{X: -1, Y: -1}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// InGrid reports whether the point lies within [0,GridSize)².
func (p Point) InGrid() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Step returns the neighboring cell in the given direction.
func (p Point) Step(d core.Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Segment is one body cell. Each segment keeps its ID from the move that
// created it until it falls off the tail.
type Segment struct {
	ID core.EntityID
	Point
}

// State is the complete snake session state.
type State struct {
	Phase   core.Phase
	Body    []Segment      // Head at index 0
	Dir     core.Direction // Direction applied on the last move
	Pending core.Direction // Latest accepted direction intent
	Mouse   Point
	MouseID core.EntityID
	Score   int
	Moves   uint64
	IDs     core.IDSequence
}

// NewState creates a playing session: a one-cell snake heading right and a
// mouse on a random free cell. ids carries the ID sequence over from the
// previous session so IDs stay unique for the game's lifetime.
func NewState(rng *rand.Rand, ids core.IDSequence) State {
	s := State{
		Phase:   core.PhasePlaying,
		Dir:     core.DirRight,
		Pending: core.DirRight,
		IDs:     ids,
	}
	s.Body = []Segment{{ID: s.IDs.Next(), Point: startCell}}
	s.MouseID = s.IDs.Next()
	s.Mouse = placeMouse(s.Body, rng)
	return s
}

// Head returns the head cell.
func (s State) Head() Point {
	return s.Body[0].Point
}

// Occupies reports whether any segment covers p.
func (s State) Occupies(p Point) bool {
	return occupied(s.Body, p)
}

func occupied(body []Segment, p Point) bool {
	for _, seg := range body {
		if seg.Point == p {
			return true
		}
	}
	return false
}
