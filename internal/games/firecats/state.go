package firecats

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const (
	CatCount          = 5
	PlayArea          = 90.0 // Cats bounce inside [0, PlayArea] on both axes
	MoveInterval      = 50 * time.Millisecond
	CountdownInterval = 100 * time.Millisecond
	TimeLimit         = 600 // Countdown ticks, 60 seconds
)

// Cat is one burning cat.
type Cat struct {
	ID     core.EntityID
	Pos    core.Vec2
	Vel    core.Vec2
	OnFire bool
}

// State is the complete Fire Cats session state.
type State struct {
	Phase core.Phase
	Cats  []Cat
	Score int
	Time  int // Countdown ticks elapsed
	IDs   core.IDSequence
}

// NewState seeds a playing session with CatCount burning cats at random
// positions and velocities.
func NewState(rng *rand.Rand, ids core.IDSequence) State {
	s := State{
		Phase: core.PhasePlaying,
		Cats:  make([]Cat, 0, CatCount),
		IDs:   ids,
	}
	for range CatCount {
		s.Cats = append(s.Cats, Cat{
			ID:     s.IDs.Next(),
			Pos:    core.Vec2{X: rng.Float64() * PlayArea, Y: rng.Float64() * PlayArea},
			Vel:    core.Vec2{X: (rng.Float64() - 0.5) * 2, Y: (rng.Float64() - 0.5) * 2},
			OnFire: true,
		})
	}
	return s
}

// Burning returns the number of cats still on fire.
func (s State) Burning() int {
	n := 0
	for _, c := range s.Cats {
		if c.OnFire {
			n++
		}
	}
	return n
}
