package firecats

import "github.com/vovakirdan/cat-arcade/internal/core"

// bounce advances one axis. The tentative position decides whether the
// velocity flips; the flipped velocity is then added to the tentative
// position, not to the original one.
func bounce(pos, vel float64) (float64, float64) {
	next := pos + vel
	if next < 0 || next > PlayArea {
		vel = -vel
	}
	return next + vel, vel
}

// Move advances every cat by its velocity.
func Move(s State) State {
	if s.Phase != core.PhasePlaying {
		return s
	}
	cats := make([]Cat, len(s.Cats))
	for i, c := range s.Cats {
		c.Pos.X, c.Vel.X = bounce(c.Pos.X, c.Vel.X)
		c.Pos.Y, c.Vel.Y = bounce(c.Pos.Y, c.Vel.Y)
		cats[i] = c
	}
	s.Cats = cats
	return s
}

// Countdown advances the clock by one tick; running out of time loses.
func Countdown(s State) State {
	if s.Phase != core.PhasePlaying {
		return s
	}
	s.Time++
	if s.Time >= TimeLimit {
		s.Time = TimeLimit
		s.Phase = core.Settle(s.Phase, core.PhaseLost)
	}
	return s
}

// Extinguish puts out the cat with the given ID. Unknown or already
// extinguished cats are ignored. The session is won once no cat burns.
func Extinguish(s State, id core.EntityID) State {
	if s.Phase != core.PhasePlaying {
		return s
	}
	idx := -1
	for i, c := range s.Cats {
		if c.ID == id && c.OnFire {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	cats := append([]Cat(nil), s.Cats...)
	cats[idx].OnFire = false
	s.Cats = cats
	s.Score++

	if len(s.Cats) > 0 && s.Burning() == 0 {
		s.Phase = core.Settle(s.Phase, core.PhaseWon)
	}
	return s
}
