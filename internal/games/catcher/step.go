package catcher

import (
	"math/rand"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// SetControl records a left/right key press or release.
func SetControl(s State, d core.Direction, pressed bool) State {
	if s.Phase != core.PhasePlaying {
		return s
	}
	switch d {
	case core.DirLeft:
		s.Controls.Left = pressed
	case core.DirRight:
		s.Controls.Right = pressed
	}
	return s
}

// Spawn adds one item above the view.
func Spawn(s State, rng *rand.Rand) State {
	if s.Phase != core.PhasePlaying {
		return s
	}
	item := Item{
		ID:    s.IDs.Next(),
		Kind:  KindHazard,
		X:     5 + rng.Float64()*90,
		Y:     SpawnY,
		Speed: 1 + rng.Float64()*1.5,
	}
	if rng.Float64() < TargetChance {
		item.Kind = KindTarget
	}
	s.Items = append(append([]Item(nil), s.Items...), item)
	return s
}

// Step moves the catcher and every item by one tick. The catcher width is
// recomputed from viewportPx on every call.
//
// Items crossing CatchLine are removed: a caught target scores, a caught
// hazard costs points, a missed target costs a life. Running out of lives
// loses immediately and leaves the remaining items untouched.
func Step(s State, viewportPx float64) State {
	if s.Phase != core.PhasePlaying {
		return s
	}

	w := CatcherWidth(viewportPx)
	x := s.CatcherX
	if s.Controls.Left {
		x -= CatcherSpeed
	}
	if s.Controls.Right {
		x += CatcherSpeed
	}
	s.CatcherX = core.ClampF(x, w/2, 100-w/2)
	catcher := core.SpanAround(s.CatcherX, w)

	items := make([]Item, 0, len(s.Items))
	for i, it := range s.Items {
		it.Y += it.Speed
		if it.Y <= CatchLine {
			items = append(items, it)
			continue
		}

		caught := catcher.ContainsStrict(it.X)
		switch {
		case caught && it.Kind == KindTarget:
			s.Score += TargetPoints
		case caught && it.Kind == KindHazard:
			s.Score -= HazardPenalty
		case it.Kind == KindTarget:
			s.Lives--
		}

		if s.Lives <= 0 {
			s.Lives = 0
			s.Phase = core.Settle(s.Phase, core.PhaseLost)
			items = append(items, s.Items[i+1:]...)
			break
		}
	}
	s.Items = items
	return s
}
