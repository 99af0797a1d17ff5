package firecats

import (
	"fmt"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const (
	hudHeight   = 2
	spriteWidth = 6 // slot digit + "(^o^)"
	redAfter    = 500
)

// field returns the area cats are drawn into.
func field(screenW, screenH int) core.Rect {
	return core.NewRect(0, hudHeight, screenW, screenH-hudHeight)
}

// cellOf maps a cat position to the top-left cell of its sprite.
func cellOf(f core.Rect, pos core.Vec2) (int, int) {
	cols := f.W - spriteWidth
	rows := f.H - 1
	x := core.ClampF(pos.X, 0, PlayArea) / PlayArea
	y := core.ClampF(pos.Y, 0, PlayArea) / PlayArea
	return f.X + int(x*float64(cols)), f.Y + int(y*float64(rows))
}

// EntityAt returns the cat whose sprite covers (col, row). Later cats are
// drawn on top, so they win.
func (g *Game) EntityAt(screenW, screenH, col, row int) (core.EntityID, bool) {
	if g.state.Phase != core.PhasePlaying {
		return 0, false
	}
	f := field(screenW, screenH)
	for i := len(g.state.Cats) - 1; i >= 0; i-- {
		c := g.state.Cats[i]
		x, y := cellOf(f, c.Pos)
		if row == y && col >= x && col < x+spriteWidth {
			return c.ID, true
		}
	}
	return 0, false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	secs := float64(snap.Time) / 10
	dst.DrawHUD(fmt.Sprintf(" Fire Cats  Saved: %d / %d", snap.Score, CatCount))
	timer := fmt.Sprintf("Time: %4.1fs ", secs)
	timerColor := core.ColorDefault
	if snap.Time > redAfter {
		timerColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timer), 0, timer, timerColor)

	f := field(dst.Width(), dst.Height())
	if f.W <= spriteWidth || f.H < 2 {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	if snap.Phase == core.PhaseIdle {
		dst.DrawOverlay(core.ColorBrightRed, "Fire Cats",
			"Click the burning cats (or press 1-5) to put them out!",
			fmt.Sprintf("You have %d seconds.", TimeLimit/10),
			"Enter: start  B: menu")
		return
	}

	for i, c := range g.state.Cats {
		x, y := cellOf(f, c.Pos)
		if c.OnFire {
			dst.DrawTextColored(x, y, fmt.Sprintf("%d(^o^)", i+1), core.ColorBrightRed)
		} else {
			dst.DrawTextColored(x, y, " (-.-)", core.ColorGray)
		}
	}

	switch snap.Phase {
	case core.PhaseWon:
		dst.DrawOverlay(core.ColorBrightGreen, "ALL CATS SAVED!",
			fmt.Sprintf("Time: %.1f seconds", secs),
			"R: restart  B: menu")
	case core.PhaseLost:
		dst.DrawOverlay(core.ColorBrightRed, "TIME'S UP!",
			fmt.Sprintf("You saved %d of %d cats", snap.Score, CatCount),
			"R: restart  B: menu")
	}
}
