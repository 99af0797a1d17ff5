package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		slot   int
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, 0},
		{"w", runeKey('w'), core.ActionUp, 0},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, 0},
		{"a", runeKey('a'), core.ActionLeft, 0},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, 0},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, 0},
		{"r", runeKey('r'), core.ActionRestart, 0},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, 0},
		{"q", runeKey('q'), core.ActionQuit, 0},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"1", runeKey('1'), core.ActionSelect, 0},
		{"5", runeKey('5'), core.ActionSelect, 4},
		{"9", runeKey('9'), core.ActionSelect, 8},
		{"0", runeKey('0'), core.ActionNone, 0},
		{"x", runeKey('x'), core.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, slot := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if slot != tt.slot {
				t.Errorf("MapKey(%q) slot = %d, want %d", tt.msg.String(), slot, tt.slot)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	if got := len(keys.FullHelp()); got != 2 {
		t.Errorf("FullHelp groups = %d, want 2", got)
	}
}
