package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// styleFor returns the lipgloss style for a screen color.
func styleFor(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
}

// RenderScreen turns the screen buffer into styled terminal output. Runs of
// cells sharing a color are styled together.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	var run strings.Builder

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				out.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		out.WriteString(styleFor(color).Render(run.String()))
		run.Reset()
	}
	return out.String()
}
