package catcher

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const hudHeight = 2

const (
	targetSprite = "><>"
	hazardSprite = "(*)"
	catFace      = "=^.^="
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	dst.DrawHUD(fmt.Sprintf(" Cat Catcher  Score: %d  Lives: %s",
		snap.Score, strings.Repeat("<3 ", snap.Lives)))

	f := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if f.W < 20 || f.H < 6 {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	if snap.Phase == core.PhaseIdle {
		dst.DrawOverlay(core.ColorBrightCyan, "Cat Catcher",
			"Catch the fish ><>  dodge the bombs (*)",
			"Left/Right: move  Enter: start  B: menu")
		return
	}

	colOf := func(x float64) int {
		return f.X + int(x/100*float64(f.W))
	}
	rowOf := func(y float64) int {
		return f.Y + int(y/100*float64(f.H-1))
	}

	for _, e := range snap.Entities {
		if e.Y < 0 {
			continue
		}
		sprite, color := targetSprite, core.ColorBrightCyan
		if e.Kind == string(KindHazard) {
			sprite, color = hazardSprite, core.ColorBrightRed
		}
		dst.DrawTextColored(colOf(e.X)-1, rowOf(e.Y), sprite, color)
	}

	// Catcher: a basket as wide as the catch span with the cat on top
	p := snap.Player
	left, right := colOf(p.X-p.Width/2), colOf(p.X+p.Width/2)
	row := rowOf(CatchLine) + 1
	basket := "\\" + strings.Repeat("_", max(right-left-2, 1)) + "/"
	dst.DrawTextColored(left, row, basket, core.ColorYellow)
	dst.DrawTextColored(colOf(p.X)-len(catFace)/2, row-1, catFace, core.ColorBrightYellow)

	if snap.Phase == core.PhaseLost {
		dst.DrawOverlay(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Final score: %d points!", snap.Score),
			"R: restart  B: menu")
	}
}
