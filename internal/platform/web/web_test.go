package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cat-arcade/internal/core"
	_ "github.com/vovakirdan/cat-arcade/internal/games/catcher"
	_ "github.com/vovakirdan/cat-arcade/internal/games/firecats"
	_ "github.com/vovakirdan/cat-arcade/internal/games/snake"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv := NewServer(ServerConfig{
		Address:    "127.0.0.1:0",
		SessionTTL: time.Minute,
		Resolution: 5 * time.Millisecond,
		Seed:       42,
	}, log.New(io.Discard))
	t.Cleanup(srv.Hub().Close)
	return srv
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func createSession(t *testing.T, h http.Handler, game string) sessionResponse {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/sessions", `{"game":"`+game+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create %s: status %d, body %s", game, w.Code, w.Body.String())
	}
	return decode[sessionResponse](t, w)
}

func TestListGames(t *testing.T) {
	h := newTestServer(t).Handler()

	w := do(t, h, http.MethodGet, "/api/games", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	games := decode[[]gameInfo](t, w)

	want := []string{"catcher", "firecats", "snake"}
	if len(games) != len(want) {
		t.Fatalf("games = %v, want %v", games, want)
	}
	for i, g := range games {
		if g.ID != want[i] || g.Title == "" {
			t.Errorf("games[%d] = %+v, want id %q with a title", i, g, want[i])
		}
	}
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	resp := createSession(t, h, "snake")
	if resp.ID == "" {
		t.Error("empty session id")
	}
	if resp.Snapshot.Game != "snake" || resp.Snapshot.Phase != core.PhaseIdle {
		t.Errorf("snapshot = %+v, want idle snake", resp.Snapshot)
	}
	if srv.Hub().Len() != 1 {
		t.Errorf("hub holds %d sessions, want 1", srv.Hub().Len())
	}
}

func TestCreateSessionErrors(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name string
		body string
	}{
		{"unknown game", `{"game":"pacman"}`},
		{"missing game", `{}`},
		{"malformed", `{"game":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/sessions", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestUnknownSession(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/sessions/nope", ""},
		{http.MethodDelete, "/api/sessions/nope", ""},
		{http.MethodPost, "/api/sessions/nope/start", ""},
		{http.MethodPost, "/api/sessions/nope/restart", ""},
		{http.MethodPost, "/api/sessions/nope/select", `{"entity_id":1}`},
		{http.MethodPost, "/api/sessions/nope/direction", `{"direction":"up","pressed":true}`},
		{http.MethodGet, "/api/sessions/nope/ws", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			if w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", w.Code)
			}
		})
	}
}

func TestFireCatsOverHTTP(t *testing.T) {
	h := newTestServer(t).Handler()
	id := createSession(t, h, "firecats").ID
	base := "/api/sessions/" + id

	w := do(t, h, http.MethodPost, base+"/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("start: status %d", w.Code)
	}
	snap := decode[core.Snapshot](t, w)
	if snap.Phase != core.PhasePlaying || len(snap.Entities) != 5 {
		t.Fatalf("after start: phase %s with %d cats", snap.Phase, len(snap.Entities))
	}

	for _, e := range snap.Entities {
		w = do(t, h, http.MethodPost, base+"/select", `{"entity_id":`+jsonNumber(e.ID)+`}`)
		if w.Code != http.StatusOK {
			t.Fatalf("select %d: status %d", e.ID, w.Code)
		}
	}

	snap = decode[core.Snapshot](t, do(t, h, http.MethodGet, base, ""))
	if snap.Phase != core.PhaseWon || snap.Score != 5 {
		t.Errorf("after five picks: phase %s score %d, want won 5", snap.Phase, snap.Score)
	}

	w = do(t, h, http.MethodPost, base+"/restart", "")
	snap = decode[core.Snapshot](t, w)
	if snap.Phase != core.PhasePlaying || snap.Score != 0 {
		t.Errorf("after restart: phase %s score %d, want playing 0", snap.Phase, snap.Score)
	}
}

func TestInputValidation(t *testing.T) {
	h := newTestServer(t).Handler()
	base := "/api/sessions/" + createSession(t, h, "catcher").ID

	tests := []struct {
		name string
		path string
		body string
	}{
		{"bad direction", "/direction", `{"direction":"sideways","pressed":true}`},
		{"missing direction", "/direction", `{"pressed":true}`},
		{"missing entity", "/select", `{}`},
		{"zero viewport", "/viewport", `{"width":0}`},
		{"malformed", "/viewport", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, base+tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCatcherControls(t *testing.T) {
	h := newTestServer(t).Handler()
	base := "/api/sessions/" + createSession(t, h, "catcher").ID

	if w := do(t, h, http.MethodPost, base+"/viewport", `{"width":1000}`); w.Code != http.StatusOK {
		t.Fatalf("viewport: status %d", w.Code)
	}
	snap := decode[core.Snapshot](t, do(t, h, http.MethodPost, base+"/start", ""))
	if snap.Player == nil || snap.Player.Width != 10 {
		t.Fatalf("player = %+v, want width 10 for a 1000px viewport", snap.Player)
	}

	w := do(t, h, http.MethodPost, base+"/direction", `{"direction":"left","pressed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("direction: status %d", w.Code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		snap = decode[core.Snapshot](t, do(t, h, http.MethodGet, base, ""))
		if snap.Player.X < 50 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("catcher never moved left")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDeleteSession(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()
	id := createSession(t, h, "snake").ID

	if w := do(t, h, http.MethodDelete, "/api/sessions/"+id, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/api/sessions/"+id, ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", w.Code)
	}
	if srv.Hub().Len() != 0 {
		t.Errorf("hub holds %d sessions, want 0", srv.Hub().Len())
	}
}

// fakeClock is a settable time source for the hub.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestHubSweep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	hub := NewHub(time.Minute, 5*time.Millisecond, core.DefaultConfig(), log.New(io.Discard))
	hub.now = clock.Now
	t.Cleanup(hub.Close)

	idle, _, err := hub.Create("snake")
	if err != nil {
		t.Fatal(err)
	}
	watched, _, err := hub.Create("snake")
	if err != nil {
		t.Fatal(err)
	}
	_, unwatch, err := hub.Watch(watched)
	if err != nil {
		t.Fatal(err)
	}

	clock.Add(30 * time.Second)
	if n := hub.Sweep(); n != 0 {
		t.Fatalf("swept %d sessions before the TTL", n)
	}

	clock.Add(time.Minute)
	if n := hub.Sweep(); n != 1 {
		t.Fatalf("swept %d sessions, want 1", n)
	}
	if _, err := hub.Get(idle); err == nil {
		t.Error("idle session survived the sweep")
	}
	if _, err := hub.Get(watched); err != nil {
		t.Error("watched session was swept")
	}

	unwatch()
	unwatch()
	clock.Add(2 * time.Minute)
	if n := hub.Sweep(); n != 1 {
		t.Errorf("swept %d sessions after unwatch, want 1", n)
	}
}

func TestHubRemoveExitsSession(t *testing.T) {
	hub := NewHub(0, 5*time.Millisecond, core.DefaultConfig(), log.New(io.Discard))
	id, sess, err := hub.Create("firecats")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Start(); err != nil {
		t.Fatal(err)
	}

	if err := hub.Remove(id); err != nil {
		t.Fatal(err)
	}
	if !sess.Closed() {
		t.Error("session still open after Remove")
	}
	if err := hub.Remove(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove = %v, want ErrNotFound", err)
	}
}

func TestStream(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	id := createSession(t, srv.Handler(), "firecats").ID
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/sessions/" + id + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first StreamMessage
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.Type != MessageSnapshot || first.Snapshot == nil || first.Snapshot.Phase != core.PhaseIdle {
		t.Fatalf("first message = %+v, want idle snapshot", first)
	}

	resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/start", "application/json", bytes.NewReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	var sawPhase, sawPlaying bool
	for !sawPlaying {
		var msg StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		switch msg.Type {
		case MessageEvent:
			if msg.Event.Kind == core.EventPhaseChanged && msg.Event.To == core.PhasePlaying {
				sawPhase = true
			}
		case MessageSnapshot:
			sawPlaying = msg.Snapshot.Phase == core.PhasePlaying
		}
	}
	if !sawPhase {
		t.Error("no phase_changed event before the playing snapshot")
	}

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+id, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	for {
		var msg StreamMessage
		err := conn.ReadJSON(&msg)
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			return
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
}

func jsonNumber(id core.EntityID) string {
	b, _ := json.Marshal(id)
	return string(b)
}
