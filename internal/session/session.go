// Package session hosts one game session: it owns the game's timers,
// serializes tick handlers and input, and tears everything down on exit.
//
// Every start or restart begins a new generation with a fresh scheduler.
// Hosts that deliver ticks asynchronously tag them with the generation they
// were scheduled for; deliveries for an older generation are rejected, so a
// timer from a previous session can never touch the current one.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

var (
	// ErrClosed is returned by every operation after Exit.
	ErrClosed = errors.New("session: closed")

	// ErrStaleTick is returned by Advance for a generation that is no longer
	// running. Hosts drop the delivery.
	ErrStaleTick = errors.New("session: stale tick")
)

// DefaultResolution is the clock period Run uses when none is given.
const DefaultResolution = 10 * time.Millisecond

// Listener receives every update. Listeners run with the session locked and
// must not call back into the session.
type Listener func(Update)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session serializes all access to one game.
type Session struct {
	mu        sync.Mutex
	game      registry.Game
	sched     *Scheduler
	gen       uint64
	closed    bool
	pending   []core.Event
	listeners map[int]Listener
	nextID    int
	logger    *log.Logger
}

// New wraps game in a session. The game is reset with cfg and left idle.
func New(game registry.Game, cfg core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{
		game:      game,
		listeners: make(map[int]Listener),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("game", game.ID())

	game.Reset(cfg)
	game.DrainEvents()
	return s
}

// GameID returns the hosted game's identifier.
func (s *Session) GameID() string {
	return s.game.ID()
}

// Title returns the hosted game's display name.
func (s *Session) Title() string {
	return s.game.Title()
}

// Start moves an idle game to playing and arms its timers.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	before := s.game.Snapshot().Phase
	s.game.Start()
	if before == core.PhaseIdle {
		s.rearm()
	}
	s.publish()
	return nil
}

// Restart begins a fresh session state. Valid in every phase.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.game.Restart()
	s.rearm()
	s.publish()
	return nil
}

// Select forwards a pointer selection of an entity.
func (s *Session) Select(id core.EntityID) error {
	return s.input(func() { s.game.HandlePointerSelect(id) })
}

// Direction forwards a direction key press or release.
func (s *Session) Direction(d core.Direction, pressed bool) error {
	return s.input(func() { s.game.HandleDirectionKey(d, pressed) })
}

// SetViewport reports the viewport width in pixels to games that use it.
func (s *Session) SetViewport(px float64) error {
	return s.input(func() {
		if va, ok := s.game.(registry.ViewportAware); ok {
			va.SetViewportWidth(px)
		}
	})
}

func (s *Session) input(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	fn()
	s.publish()
	return nil
}

// Advance runs the timers of generation gen forward by dt.
func (s *Session) Advance(gen uint64, dt time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if gen != s.gen || !s.runningLocked() {
		return ErrStaleTick
	}
	s.advanceLocked(dt)
	return nil
}

func (s *Session) advanceLocked(dt time.Duration) {
	if s.sched.Advance(dt) > 0 {
		s.publish()
	}
}

// Generation returns the current timer generation. It is 0 until the first
// start.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Running reports whether the current generation's timers are armed.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Session) runningLocked() bool {
	return !s.closed && s.sched != nil && s.sched.Running()
}

// Snapshot returns a read-only copy of the session state.
func (s *Session) Snapshot() core.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Render draws the game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Render(dst)
}

// EntityAt maps a screen cell to an entity for games with clickable
// entities.
func (s *Session) EntityAt(screenW, screenH, col, row int) (core.EntityID, bool) {
	p, ok := s.game.(registry.Pickable)
	if !ok {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return p.EntityAt(screenW, screenH, col, row)
}

// Listen registers l for every update. The returned function unregisters it;
// it must not be called from inside a listener.
func (s *Session) Listen(l Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Subscribe returns a buffered feed of updates. The feed is closed on Exit.
func (s *Session) Subscribe(bufferSize int) *Subscription {
	sub := newSubscription(bufferSize)

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		sub.Close()
		return sub
	}

	sub.unsubFunc = s.Listen(sub.send)
	return sub
}

// Exit tears the session down: timers stop, listeners get a final update and
// are dropped. Every later call returns ErrClosed.
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if s.sched != nil {
		s.sched.Stop()
	}
	s.closed = true
	s.pending = append(s.pending, s.game.DrainEvents()...)

	u := Update{
		Snapshot:   s.game.Snapshot(),
		Events:     s.pending,
		Generation: s.gen,
		Closed:     true,
	}
	s.pending = nil
	for _, l := range s.listeners {
		l(u)
	}
	clear(s.listeners)
	s.logger.Debug("session closed")
	return nil
}

// Closed reports whether Exit has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Run drives the session from the wall clock until ctx is done or the
// session exits.
func (s *Session) Run(ctx context.Context, resolution time.Duration) error {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	ticker := time.NewTicker(resolution)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			s.mu.Lock()
			closed := s.closed
			if !closed && s.runningLocked() {
				s.advanceLocked(dt)
			}
			s.mu.Unlock()
			if closed {
				return nil
			}
		}
	}
}

// rearm stops the previous generation and arms a new one if the game is
// playing. Each timer handler is wrapped so the scheduler stops the moment
// the phase leaves playing.
func (s *Session) rearm() {
	if s.sched != nil {
		s.sched.Stop()
		s.sched = nil
	}
	if s.game.Snapshot().Phase != core.PhasePlaying {
		return
	}

	s.gen++
	timers := s.game.Timers()
	for i := range timers {
		fire := timers[i].Fire
		timers[i].Fire = func() {
			fire()
			s.collect()
		}
	}
	s.sched = NewScheduler(timers)
	s.logger.Debug("timers armed", "generation", s.gen, "timers", len(timers))
}

// collect moves the game's events into the pending batch and stops the
// timers when the game has left playing.
func (s *Session) collect() {
	evts := s.game.DrainEvents()
	s.pending = append(s.pending, evts...)
	if s.sched == nil {
		return
	}
	for _, e := range evts {
		if e.Kind == core.EventPhaseChanged && e.To != core.PhasePlaying {
			s.sched.Stop()
		}
	}
}

// publish stops timers if the phase left playing, then hands the pending
// events and a fresh snapshot to every listener.
func (s *Session) publish() {
	s.collect()

	for _, e := range s.pending {
		if e.Kind != core.EventPhaseChanged {
			continue
		}
		s.logger.Info("phase changed", "from", e.From, "to", e.To, "generation", s.gen)
		if e.To.IsTerminal() {
			s.logger.Info("game over", "game", s.GameID(), "outcome", e.To)
		}
	}

	u := Update{
		Snapshot:   s.game.Snapshot(),
		Events:     s.pending,
		Generation: s.gen,
	}
	s.pending = nil
	for _, l := range s.listeners {
		l(u)
	}
}
