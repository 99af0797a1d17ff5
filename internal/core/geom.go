// Package core provides fundamental types and utilities for the arcade platform:
// phases, events, entity IDs, snapshots and the screen buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a block of screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Vec2 is a point or displacement in the normalized 0-100 play area.
type Vec2 struct {
	X, Y float64
}

// Span is an open horizontal interval (Left, Right).
type Span struct {
	Left, Right float64
}

// SpanAround returns the span of the given width centered on x.
func SpanAround(x, width float64) Span {
	return Span{Left: x - width/2, Right: x + width/2}
}

// ContainsStrict reports whether Left < x < Right.
func (s Span) ContainsStrict(x float64) bool {
	return x > s.Left && x < s.Right
}
