package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is the character buffer games draw into. Hosts turn it into
// terminal output; games never see the terminal.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.w
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.h
}

// Resize changes the dimensions and blanks the buffer. Games redraw every
// frame, so nothing is carried over.
func (s *Screen) Resize(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	if n := s.w * s.h; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Set places an uncolored rune. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes uncolored text from (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text from (x, y), clipped at the edges.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// DrawOverlay draws a centered box holding lines with a blank row between
// each. The first line is drawn in the title color.
func (s *Screen) DrawOverlay(title Color, lines ...string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, utf8.RuneCountInString(l))
	}
	box := NewRect(0, 0, widest+6, len(lines)*2+1)
	box.X, box.Y = (s.w-box.W)/2, (s.h-box.H)/2

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(box)

	for i, l := range lines {
		c := ColorDefault
		if i == 0 {
			c = title
		}
		x := (s.w - utf8.RuneCountInString(l)) / 2
		s.DrawTextColored(x, box.Y+1+i*2, l, c)
	}
}

// DrawHUD writes a status line on row 0 and a rule on row 1.
func (s *Screen) DrawHUD(text string) {
	s.DrawText(0, 0, text)
	for x := 0; x < s.w; x++ {
		s.Set(x, 1, '─')
	}
}
