package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// AppModel manages the full arcade flow: menu -> game -> menu.
// It is the top-level model for `arcade menu` and SSH sessions.
type AppModel struct {
	opts      Options
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewAppModel creates the menu-driven arcade.
func NewAppModel(opts Options) AppModel {
	opts = opts.withDefaults()
	return AppModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the menu.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the running game.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.ID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.opts.Logger.Error("cannot create game", "game", selected.ID, "error", err)
			m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
			return m, nil
		}

		gameModel := NewGameModel(game, m.opts)
		m.gameModel = &gameModel
		m.opts.Logger.Info("game selected", "game", selected.ID)
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is on screen.
func (m AppModel) InGame() bool {
	return m.gameModel != nil
}

// Close tears down a game left running when the program ends.
func (m AppModel) Close() {
	if m.gameModel != nil {
		m.gameModel.exit()
	}
}

// RunMenu runs the menu-driven arcade until the player quits.
func RunMenu(opts Options) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if app, ok := final.(AppModel); ok {
		app.Close()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
