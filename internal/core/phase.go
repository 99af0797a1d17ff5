package core

// Phase is the coarse lifecycle state of a game session.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// IsTerminal returns true for won and lost.
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// CanTransition reports whether a session may move from one phase to another.
// Playing is reachable from every phase (start from idle, restart from the
// rest); won and lost only from playing; idle is never re-entered.
func CanTransition(from, to Phase) bool {
	switch to {
	case PhasePlaying:
		return true
	case PhaseWon, PhaseLost:
		return from == PhasePlaying
	default:
		return false
	}
}

// Settle applies a terminal outcome to the current phase.
// Returns the phase unchanged if the transition is not legal.
func Settle(current, outcome Phase) Phase {
	if !CanTransition(current, outcome) {
		return current
	}
	return outcome
}
