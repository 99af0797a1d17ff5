package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cat-arcade/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 2)
	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	menuBlurbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// blurbs describes each game in the picker.
var blurbs = map[string]string{
	"firecats": "Click the burning cats before time runs out",
	"catcher":  "Catch the fish, dodge the bombs",
	"snake":    "Eat the mice, don't bite your tail",
}

// MenuModel lists the registered cat games and records the pick.
type MenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *registry.GameInfo // Set when user selects a game
}

// NewMenuModel creates a new menu model listing every registered game.
func NewMenuModel(width, height int) MenuModel {
	h := help.New()
	h.ShowAll = false

	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init has nothing to start; the menu is static until a key arrives.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and the final pick.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey maps menu bindings onto cursor moves.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View draws the title, the game list and the help footer.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("=^.^=  C A T   A R C A D E  =^.^="))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(menuItemStyle.Render(line))
		if blurb, ok := blurbs[item.ID]; ok {
			b.WriteString("  ")
			b.WriteString(menuBlurbStyle.Render(blurb))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting reports whether the player left the arcade.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
