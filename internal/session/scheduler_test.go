package session

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

func recorder(log *[]string, name string) func() {
	return func() { *log = append(*log, name) }
}

func TestSchedulerFiresInDueOrder(t *testing.T) {
	var fired []string
	s := NewScheduler([]core.Timer{
		{Name: "fast", Interval: 50 * time.Millisecond, Fire: recorder(&fired, "fast")},
		{Name: "slow", Interval: 100 * time.Millisecond, Fire: recorder(&fired, "slow")},
	})

	n := s.Advance(100 * time.Millisecond)

	want := []string{"fast", "fast", "slow"}
	if n != len(want) || !slices.Equal(fired, want) {
		t.Errorf("fired %v (%d), expected %v", fired, n, want)
	}
	if s.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed = %v", s.Elapsed())
	}
}

func TestSchedulerAccumulatesPartialSteps(t *testing.T) {
	var fired []string
	s := NewScheduler([]core.Timer{
		{Name: "t", Interval: 50 * time.Millisecond, Fire: recorder(&fired, "t")},
	})

	s.Advance(30 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatal("timer fired early")
	}
	s.Advance(30 * time.Millisecond)
	if len(fired) != 1 {
		t.Errorf("Expected 1 fire after 60ms, got %d", len(fired))
	}
}

func TestSchedulerCapsLongSteps(t *testing.T) {
	count := 0
	s := NewScheduler([]core.Timer{
		{Name: "t", Interval: 100 * time.Millisecond, Fire: func() { count++ }},
	})

	s.Advance(time.Hour)

	if count != int(MaxAdvance/(100*time.Millisecond)) {
		t.Errorf("Expected %d fires, got %d", MaxAdvance/(100*time.Millisecond), count)
	}
}

func TestSchedulerStopFromHandler(t *testing.T) {
	var s *Scheduler
	count := 0
	s = NewScheduler([]core.Timer{
		{Name: "t", Interval: 10 * time.Millisecond, Fire: func() {
			count++
			if count == 3 {
				s.Stop()
			}
		}},
	})

	s.Advance(time.Second)
	s.Advance(time.Second)

	if count != 3 {
		t.Errorf("Expected 3 fires before stop, got %d", count)
	}
	if s.Running() {
		t.Error("scheduler should report stopped")
	}
}

func TestSchedulerIgnoresInvalidTimers(t *testing.T) {
	s := NewScheduler([]core.Timer{
		{Name: "zero", Interval: 0, Fire: func() { t.Error("zero interval fired") }},
		{Name: "nil", Interval: time.Millisecond},
	})
	if n := s.Advance(time.Second); n != 0 {
		t.Errorf("Expected no fires, got %d", n)
	}
}
