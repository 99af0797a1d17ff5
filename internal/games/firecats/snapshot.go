package firecats

import "github.com/vovakirdan/cat-arcade/internal/core"

// Entity kinds reported in snapshots.
const (
	KindOnFire       = "cat-on-fire"
	KindExtinguished = "cat-extinguished"
)

// Snapshot returns the current state for renderers.
func (g *Game) Snapshot() core.Snapshot {
	s := g.state
	snap := core.Snapshot{
		Game:      ID,
		Phase:     s.Phase,
		Score:     s.Score,
		Time:      s.Time,
		TimeLimit: TimeLimit,
		Entities:  make([]core.EntityView, 0, len(s.Cats)),
	}
	if s.Phase == core.PhaseIdle {
		return snap
	}
	for _, c := range s.Cats {
		view := core.EntityView{ID: c.ID, Kind: KindOnFire, Status: "alive", X: c.Pos.X, Y: c.Pos.Y}
		if !c.OnFire {
			view.Kind = KindExtinguished
			view.Status = "extinguished"
		}
		snap.Entities = append(snap.Entities, view)
	}
	return snap
}
