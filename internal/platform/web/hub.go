// Package web hosts arcade sessions over HTTP. Clients drive a session with
// JSON requests and watch it through a WebSocket snapshot stream.
package web

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

var (
	// ErrUnknownGame is returned when a session is requested for a game that
	// is not registered.
	ErrUnknownGame = errors.New("web: unknown game")

	// ErrNotFound is returned for a session ID the hub does not hold.
	ErrNotFound = errors.New("web: session not found")
)

// entry is one hosted session and its driver goroutine.
type entry struct {
	id       string
	sess     *session.Session
	cancel   context.CancelFunc
	done     chan struct{}
	lastSeen time.Time
	watchers int
}

// Hub owns every web session. Each session is driven by its own goroutine
// and removed on request or once it has been idle for longer than the TTL.
type Hub struct {
	mu         sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	resolution time.Duration
	runtime    core.RuntimeConfig
	logger     *log.Logger
	now        func() time.Time
}

// NewHub creates an empty hub. A ttl of zero disables expiry.
func NewHub(ttl, resolution time.Duration, runtime core.RuntimeConfig, logger *log.Logger) *Hub {
	return &Hub{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		resolution: resolution,
		runtime:    runtime,
		logger:     logger,
		now:        time.Now,
	}
}

// Create starts a new idle session of gameID and returns its ID.
func (h *Hub) Create(gameID string) (string, *session.Session, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}

	cfg := h.runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	id := uuid.NewString()
	sess := session.New(game, cfg, session.WithLogger(h.logger.With("session", id)))

	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		id:       id,
		sess:     sess,
		cancel:   cancel,
		done:     make(chan struct{}),
		lastSeen: h.now(),
	}
	go func() {
		defer close(e.done)
		if err := sess.Run(ctx, h.resolution); err != nil && !errors.Is(err, context.Canceled) {
			h.logger.Error("session driver stopped", "session", id, "error", err)
		}
	}()

	h.mu.Lock()
	h.entries[id] = e
	h.mu.Unlock()

	h.logger.Info("session created", "session", id, "game", gameID)
	return id, sess, nil
}

// Get returns the session with the given ID and marks it as seen.
func (h *Hub) Get(id string) (*session.Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = h.now()
	return e.sess, nil
}

// Watch marks the session as streamed. Watched sessions never expire. The
// returned function ends the watch.
func (h *Hub) Watch(id string) (*session.Session, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entries[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	e.watchers++
	e.lastSeen = h.now()

	var once sync.Once
	return e.sess, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			e.watchers--
			e.lastSeen = h.now()
		})
	}, nil
}

// Remove exits the session and stops its driver.
func (h *Hub) Remove(id string) error {
	h.mu.Lock()
	e, ok := h.entries[id]
	delete(h.entries, id)
	h.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	h.teardown(e)
	h.logger.Info("session removed", "session", id)
	return nil
}

// Len returns the number of hosted sessions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// IDs returns the hosted session IDs in sorted order.
func (h *Hub) IDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.entries))
	for id := range h.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sweep removes every unwatched session idle for longer than the TTL, and
// every session that exited on its own. It returns how many were removed.
func (h *Hub) Sweep() int {
	now := h.now()

	h.mu.Lock()
	var expired []*entry
	for id, e := range h.entries {
		idle := h.ttl > 0 && e.watchers == 0 && now.Sub(e.lastSeen) > h.ttl
		if idle || e.sess.Closed() {
			expired = append(expired, e)
			delete(h.entries, id)
		}
	}
	h.mu.Unlock()

	for _, e := range expired {
		h.teardown(e)
		h.logger.Info("session expired", "session", e.id)
	}
	return len(expired)
}

// Janitor sweeps the hub every interval until ctx is done.
func (h *Hub) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Sweep()
		}
	}
}

// Close removes every session.
func (h *Hub) Close() {
	h.mu.Lock()
	entries := make([]*entry, 0, len(h.entries))
	for id, e := range h.entries {
		entries = append(entries, e)
		delete(h.entries, id)
	}
	h.mu.Unlock()

	for _, e := range entries {
		h.teardown(e)
	}
}

func (h *Hub) teardown(e *entry) {
	_ = e.sess.Exit()
	e.cancel()
	<-e.done
}
