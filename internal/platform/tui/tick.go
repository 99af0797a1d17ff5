// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

// TickMsg advances the session clock. Session and Gen name the session and
// timer generation the tick was scheduled for. Generations restart with
// every session, so a tick is dropped unless both still match.
type TickMsg struct {
	Session *session.Session
	Gen     uint64
	At      time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(sess *session.Session, gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Session: sess, Gen: gen, At: t}
	})
}

// releaseMsg lifts a held direction key. Terminals report key presses and
// auto-repeats but never releases, so a key counts as released once no
// repeat arrived for a while. Seq identifies the press it belongs to and
// owner the game whose key state recorded it.
type releaseMsg struct {
	Dir   core.Direction
	Seq   uint64
	owner *keyState
}

func releaseCmd(owner *keyState, dir core.Direction, seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{Dir: dir, Seq: seq, owner: owner}
	})
}
