package session

import (
	"sync"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Update is what a session publishes after every change.
type Update struct {
	Snapshot   core.Snapshot
	Events     []core.Event
	Generation uint64
	Closed     bool // Final update, sent by Exit
}

// Subscription is a buffered feed of session updates for a consumer running
// on another goroutine (a WebSocket writer, for example).
type Subscription struct {
	updates   chan Update
	done      chan struct{}
	doneOnce  sync.Once
	unsubFunc func()
}

func newSubscription(bufferSize int) *Subscription {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &Subscription{
		updates: make(chan Update, bufferSize),
		done:    make(chan struct{}),
	}
}

// send delivers an update without blocking. When the buffer is full the
// oldest update is dropped; snapshots supersede each other.
func (s *Subscription) send(u Update) {
	select {
	case <-s.done:
		return
	default:
	}
	if u.Closed {
		defer s.doneOnce.Do(func() { close(s.done) })
	}

	select {
	case s.updates <- u:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- u:
		default:
		}
	}
}

// Updates returns the channel to receive updates from.
func (s *Subscription) Updates() <-chan Update {
	return s.updates
}

// Done returns a channel that closes when the subscription ends, either by
// Close or because the session exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close detaches the subscription from its session.
// Safe to call multiple times.
func (s *Subscription) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
		if s.unsubFunc != nil {
			s.unsubFunc()
		}
	})
}
