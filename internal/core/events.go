package core

// EventKind identifies a session-level event.
type EventKind string

const (
	EventPhaseChanged EventKind = "phase_changed"
	EventScored       EventKind = "scored"
	EventPenalty      EventKind = "penalty"
	EventLifeLost     EventKind = "life_lost"
)

// Event is emitted by a game after a state change and consumed by the
// presentation layer (overlays, audio cues, network streams).
type Event struct {
	Kind  EventKind `json:"kind"`
	Game  string    `json:"game"`
	From  Phase     `json:"from,omitempty"`
	To    Phase     `json:"to,omitempty"`
	Delta int       `json:"delta,omitempty"`
}

// Status is the subset of session state events are derived from.
type Status struct {
	Phase Phase
	Score int
	Lives int
}

// DiffEvents compares two statuses of the same game and returns the events
// that describe the change, score and lives first, phase last.
func DiffEvents(game string, before, after Status) []Event {
	var out []Event
	if d := after.Score - before.Score; d > 0 {
		out = append(out, Event{Kind: EventScored, Game: game, Delta: d})
	} else if d < 0 {
		out = append(out, Event{Kind: EventPenalty, Game: game, Delta: d})
	}
	if d := after.Lives - before.Lives; d < 0 {
		out = append(out, Event{Kind: EventLifeLost, Game: game, Delta: d})
	}
	if after.Phase != before.Phase {
		out = append(out, Event{Kind: EventPhaseChanged, Game: game, From: before.Phase, To: after.Phase})
	}
	return out
}

// EventQueue is a simple FIFO of pending events.
type EventQueue struct {
	items []Event
}

// Push appends events to the queue.
func (q *EventQueue) Push(evts ...Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evts...)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
