package snake

import "github.com/vovakirdan/cat-arcade/internal/core"

// Entity kinds reported in snapshots.
const (
	KindHead  = "snake-head"
	KindBody  = "snake-body"
	KindMouse = "mouse"
)

// Snapshot returns the current state for renderers.
// Entities list the body head-first followed by the mouse.
func (g *Game) Snapshot() core.Snapshot {
	s := g.state
	snap := core.Snapshot{
		Game:     ID,
		Phase:    s.Phase,
		Score:    s.Score,
		Grid:     GridSize,
		Entities: make([]core.EntityView, 0, len(s.Body)+1),
	}
	if s.Phase == core.PhaseIdle {
		return snap
	}

	for i, seg := range s.Body {
		kind := KindBody
		if i == 0 {
			kind = KindHead
		}
		snap.Entities = append(snap.Entities, core.EntityView{
			ID:     seg.ID,
			Kind:   kind,
			Status: "alive",
			X:      float64(seg.X),
			Y:      float64(seg.Y),
		})
	}
	if s.Mouse.InGrid() {
		snap.Entities = append(snap.Entities, core.EntityView{
			ID:     s.MouseID,
			Kind:   KindMouse,
			Status: "alive",
			X:      float64(s.Mouse.X),
			Y:      float64(s.Mouse.Y),
		})
	}
	return snap
}
