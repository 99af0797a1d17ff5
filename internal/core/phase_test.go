package core

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		expected bool
	}{
		{PhaseIdle, PhasePlaying, true},
		{PhaseWon, PhasePlaying, true},
		{PhaseLost, PhasePlaying, true},
		{PhasePlaying, PhasePlaying, true},
		{PhasePlaying, PhaseWon, true},
		{PhasePlaying, PhaseLost, true},
		{PhaseIdle, PhaseWon, false},
		{PhaseLost, PhaseWon, false},
		{PhaseWon, PhaseLost, false},
		{PhasePlaying, PhaseIdle, false},
		{PhaseLost, PhaseIdle, false},
	}

	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.expected {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.expected)
		}
	}
}

func TestPhaseIsTerminal(t *testing.T) {
	for p, want := range map[Phase]bool{
		PhaseIdle:    false,
		PhasePlaying: false,
		PhaseWon:     true,
		PhaseLost:    true,
	} {
		if got := p.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", p, got, want)
		}
	}
}

func TestSettle(t *testing.T) {
	if got := Settle(PhasePlaying, PhaseLost); got != PhaseLost {
		t.Errorf("Settle(playing, lost) = %s", got)
	}
	if got := Settle(PhaseWon, PhaseLost); got != PhaseWon {
		t.Errorf("Settle(won, lost) should keep won, got %s", got)
	}
}

func TestDiffEvents(t *testing.T) {
	before := Status{Phase: PhasePlaying, Score: 10, Lives: 2}
	after := Status{Phase: PhaseLost, Score: 5, Lives: 0}

	evts := DiffEvents("catcher", before, after)
	if len(evts) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(evts), evts)
	}
	if evts[0].Kind != EventPenalty || evts[0].Delta != -5 {
		t.Errorf("first event = %+v, expected penalty -5", evts[0])
	}
	if evts[1].Kind != EventLifeLost || evts[1].Delta != -2 {
		t.Errorf("second event = %+v, expected life_lost -2", evts[1])
	}
	if evts[2].Kind != EventPhaseChanged || evts[2].From != PhasePlaying || evts[2].To != PhaseLost {
		t.Errorf("last event = %+v, expected playing->lost", evts[2])
	}

	if evts := DiffEvents("snake", before, before); len(evts) != 0 {
		t.Errorf("no change should yield no events, got %+v", evts)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventScored}, Event{Kind: EventPenalty})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	out := q.Drain()
	if len(out) != 2 || out[0].Kind != EventScored {
		t.Errorf("Drain() = %+v", out)
	}
	if q.Drain() != nil {
		t.Error("second Drain() should be empty")
	}
}

func TestIDSequenceMonotonic(t *testing.T) {
	var seq IDSequence
	prev := seq.Last()
	for range 100 {
		id := seq.Next()
		if id <= prev {
			t.Fatalf("Next() = %d after %d, expected strictly increasing", id, prev)
		}
		prev = id
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s opposite twice should be itself", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and its opposite should cancel", d)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
