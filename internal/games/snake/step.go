package snake

import (
	"math/rand"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Steer records a direction intent. A reversal of the direction applied on
// the last move is rejected so the head can never turn into the neck.
func Steer(s State, d core.Direction) State {
	if s.Phase != core.PhasePlaying || d == core.DirNone {
		return s
	}
	if d == s.Dir.Opposite() {
		return s
	}
	s.Pending = d
	return s
}

// Move advances the snake one cell in the pending direction.
// Leaving the grid or hitting any body cell loses the game and leaves the
// snake exactly as it was.
func Move(s State, rng *rand.Rand) State {
	if s.Phase != core.PhasePlaying || len(s.Body) == 0 {
		return s
	}

	newHead := s.Head().Step(s.Pending)
	if !newHead.InGrid() || s.Occupies(newHead) {
		s.Phase = core.Settle(s.Phase, core.PhaseLost)
		return s
	}

	body := make([]Segment, 0, len(s.Body)+1)
	body = append(body, Segment{ID: s.IDs.Next(), Point: newHead})
	body = append(body, s.Body...)

	if newHead == s.Mouse {
		s.Score += MousePoints
		s.Mouse = placeMouse(body, rng)
	} else {
		body = body[:len(body)-1]
	}

	s.Body = body
	s.Dir = s.Pending
	s.Moves++
	return s
}

// placeMouse picks a uniformly random cell not covered by the body.
// The board always has room in practice; if it does not, the mouse is parked
// off the grid instead of retrying forever.
func placeMouse(body []Segment, rng *rand.Rand) Point {
	for range GridSize * GridSize * 4 {
		p := Point{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		if !occupied(body, p) {
			return p
		}
	}

	var free []Point
	for y := range GridSize {
		for x := range GridSize {
			p := Point{X: x, Y: y}
			if !occupied(body, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return offGrid
	}
	return free[rng.Intn(len(free))]
}
