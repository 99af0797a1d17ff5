package core

// EntityView is the read-only projection of one entity.
type EntityView struct {
	ID     EntityID `json:"id"`
	Kind   string   `json:"kind"`
	Status string   `json:"status"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
}

// PlayerView describes the player-controlled paddle of the catch game.
type PlayerView struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// Snapshot is the copy of session state handed to renderers after every tick.
// Fields a game does not use stay at their zero value.
type Snapshot struct {
	Game      string       `json:"game"`
	Phase     Phase        `json:"phase"`
	Score     int          `json:"score"`
	Lives     int          `json:"lives"`
	Time      int          `json:"time"`       // countdown ticks elapsed
	TimeLimit int          `json:"time_limit"` // countdown ceiling
	Grid      int          `json:"grid"`       // grid edge length for grid games
	Player    *PlayerView  `json:"player,omitempty"`
	Entities  []EntityView `json:"entities"`
}

// Status extracts the event-relevant fields.
func (s Snapshot) Status() Status {
	return Status{Phase: s.Phase, Score: s.Score, Lives: s.Lives}
}

// Entity looks up an entity by ID.
func (s Snapshot) Entity(id EntityID) (EntityView, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return EntityView{}, false
}
