package session

import (
	"time"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// MaxAdvance caps how much time a single Advance call may simulate. A host
// that stalls (suspended laptop, paused SSH client) resumes instead of
// replaying minutes of ticks in one burst.
const MaxAdvance = time.Second

type scheduled struct {
	timer core.Timer
	due   time.Duration
}

// Scheduler runs a fixed set of interval timers against a virtual clock.
// It is not safe for concurrent use; Session serializes access.
type Scheduler struct {
	timers  []scheduled
	now     time.Duration
	running bool
}

// NewScheduler creates a running scheduler. Each timer first fires one
// interval after creation. Timers with a non-positive interval are ignored.
func NewScheduler(timers []core.Timer) *Scheduler {
	s := &Scheduler{running: true}
	for _, t := range timers {
		if t.Interval <= 0 || t.Fire == nil {
			continue
		}
		s.timers = append(s.timers, scheduled{timer: t, due: t.Interval})
	}
	return s
}

// Advance moves the clock forward by dt and fires every timer that comes due,
// in due order. Timers due at the same instant fire in registration order.
// Returns the number of handler calls. Once Stop is called, from a handler
// or elsewhere, nothing else fires.
func (s *Scheduler) Advance(dt time.Duration) int {
	if !s.running || dt <= 0 {
		return 0
	}
	dt = min(dt, MaxAdvance)
	target := s.now + dt

	fired := 0
	for s.running {
		next := -1
		for i := range s.timers {
			if s.timers[i].due > target {
				continue
			}
			if next < 0 || s.timers[i].due < s.timers[next].due {
				next = i
			}
		}
		if next < 0 {
			break
		}

		t := &s.timers[next]
		s.now = t.due
		t.due += t.timer.Interval
		t.timer.Fire()
		fired++
	}

	if s.running {
		s.now = target
	}
	return fired
}

// Stop cancels every timer. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.running = false
}

// Running reports whether the scheduler still fires timers.
func (s *Scheduler) Running() bool {
	return s.running
}

// Elapsed returns the virtual time simulated so far.
func (s *Scheduler) Elapsed() time.Duration {
	return s.now
}
