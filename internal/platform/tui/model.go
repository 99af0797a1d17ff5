package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-arcade/internal/audio"
	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

// Options configures the terminal host.
type Options struct {
	Runtime    core.RuntimeConfig
	Frame      time.Duration // Clock period
	KeyRelease time.Duration // Held keys release after this long without a repeat
	Logger     *log.Logger
	Audio      audio.Player
}

func (o Options) withDefaults() Options {
	if o.Frame <= 0 {
		o.Frame = 50 * time.Millisecond
	}
	if o.KeyRelease <= 0 {
		o.KeyRelease = 180 * time.Millisecond
	}
	if o.Runtime.ScreenW <= 0 || o.Runtime.ScreenH <= 0 {
		d := core.DefaultConfig()
		o.Runtime.ScreenW, o.Runtime.ScreenH = d.ScreenW, d.ScreenH
	}
	if o.Runtime.CellPx <= 0 {
		o.Runtime.CellPx = core.DefaultConfig().CellPx
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Audio == nil {
		o.Audio = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// keyState tracks held direction keys across Update calls.
type keyState struct {
	seq  uint64
	held map[core.Direction]uint64
}

// GameModel is the Bubble Tea model for one game session.
type GameModel struct {
	sess       *session.Session
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	keys       *keyState
	lastTick   time.Time
	ticking    uint64 // Generation the tick chain runs for
	stopAudio  func()
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps game in a session and prepares it for the terminal.
func NewGameModel(game registry.Game, opts Options) GameModel {
	opts = opts.withDefaults()

	sess := session.New(game, opts.Runtime, session.WithLogger(opts.Logger))
	_ = sess.SetViewport(opts.Runtime.ViewportPx())

	return GameModel{
		sess:      sess,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		keyMapper: NewKeyMapper(),
		keys:      &keyState{held: make(map[core.Direction]uint64)},
		stopAudio: sess.Listen(audio.Listener(opts.Audio)),
	}
}

// Session returns the hosted session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// Init starts nothing: the game waits on its title screen.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case releaseMsg:
		if msg.owner == m.keys && m.keys.held[msg.Dir] == msg.Seq {
			delete(m.keys.held, msg.Dir)
			_ = m.sess.Direction(msg.Dir, false)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, slot := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.exit()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.exit()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionStart:
		return m.arm(m.sess.Start())

	case core.ActionRestart:
		return m.arm(m.sess.Restart())

	case core.ActionSelect:
		snap := m.sess.Snapshot()
		if slot >= 0 && slot < len(snap.Entities) {
			_ = m.sess.Select(snap.Entities[slot].ID)
		}
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dir := action.Direction()
		if err := m.sess.Direction(dir, true); err != nil {
			return m, nil
		}
		m.keys.seq++
		m.keys.held[dir] = m.keys.seq
		return m, releaseCmd(m.keys, dir, m.keys.seq, m.opts.KeyRelease)
	}

	return m, nil
}

// arm starts a tick chain for the current generation when its timers are
// running and no chain exists for it yet.
func (m GameModel) arm(err error) (tea.Model, tea.Cmd) {
	if err != nil || !m.sess.Running() {
		return m, nil
	}
	gen := m.sess.Generation()
	if gen == m.ticking {
		return m, nil
	}
	m.ticking = gen
	m.lastTick = time.Now()
	return m, tickCmd(m.sess, gen, m.opts.Frame)
}

// handleMouse turns a left click into an entity selection.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if id, ok := m.sess.EntityAt(m.screen.Width(), m.screen.Height(), msg.X, msg.Y); ok {
		_ = m.sess.Select(id)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	_ = m.sess.SetViewport(m.opts.Runtime.ViewportPx())
	return m, nil
}

// handleTick advances the session by the wall time since the last tick.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.sess {
		return m, nil
	}
	dt := msg.At.Sub(m.lastTick)
	err := m.sess.Advance(msg.Gen, dt)
	switch {
	case errors.Is(err, session.ErrStaleTick), errors.Is(err, session.ErrClosed):
		return m, nil
	case err != nil:
		m.opts.Logger.Error("tick failed", "error", err)
		return m, nil
	}

	m.lastTick = msg.At
	return m, tickCmd(m.sess, msg.Gen, m.opts.Frame)
}

// exit tears the session down and detaches audio.
func (m GameModel) exit() {
	if err := m.sess.Exit(); err == nil {
		m.opts.Logger.Debug("session exited", "game", m.sess.GameID())
	}
	m.stopAudio()
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.sess.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sess.GameID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.sess.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or backs
// out.
func Run(game registry.Game, opts Options) error {
	model := NewGameModel(game, opts)
	model.standalone = true
	defer model.exit()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
