package catcher

import "github.com/vovakirdan/cat-arcade/internal/core"

// Snapshot returns the current state for renderers.
func (g *Game) Snapshot() core.Snapshot {
	s := g.state
	snap := core.Snapshot{
		Game:  ID,
		Phase: s.Phase,
		Score: s.Score,
		Lives: s.Lives,
		Player: &core.PlayerView{
			X:     s.CatcherX,
			Width: CatcherWidth(g.viewportPx),
		},
		Entities: make([]core.EntityView, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		snap.Entities = append(snap.Entities, core.EntityView{
			ID:     it.ID,
			Kind:   string(it.Kind),
			Status: "alive",
			X:      it.X,
			Y:      it.Y,
		})
	}
	return snap
}
