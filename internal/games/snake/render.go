package snake

import (
	"fmt"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const (
	cellCols  = 2 // Terminal columns per grid cell, keeps the board square-ish
	hudHeight = 2
)

// boardRect returns the framed board area on a screen of the given size.
func boardRect(screenW int) core.Rect {
	w := GridSize*cellCols + 2
	h := GridSize + 2
	return core.NewRect((screenW-w)/2, hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	dst.DrawHUD(fmt.Sprintf(" Snake Cat — Score: %d  Length: %d", snap.Score, len(g.state.Body)))

	board := boardRect(dst.Width())
	if board.X < 0 || board.Bottom() > dst.Height() {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	if snap.Phase == core.PhaseIdle {
		dst.DrawOverlay(core.ColorBrightGreen, "Snake Cat", "Eat the mice with the arrow keys!", "Enter: start  B: menu")
		return
	}

	dst.DrawBox(board)
	for _, e := range snap.Entities {
		x := board.X + 1 + int(e.X)*cellCols
		y := board.Y + 1 + int(e.Y)
		switch e.Kind {
		case KindHead:
			dst.DrawTextColored(x, y, "^^", core.ColorBrightYellow)
		case KindBody:
			dst.DrawTextColored(x, y, "[]", core.ColorYellow)
		case KindMouse:
			dst.DrawTextColored(x, y, "<:", core.ColorGray)
		}
	}

	if snap.Phase == core.PhaseLost {
		dst.DrawOverlay(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Final score: %d points!", snap.Score),
			"R: restart  B: menu")
	}
}
