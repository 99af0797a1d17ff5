package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	CellPx  int   // Approximate pixel width of one terminal column
	Seed    int64 // RNG seed; 0 means the host picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		CellPx:  10,
		Seed:    0,
	}
}

// ViewportPx returns the viewport width in pixels for games that size
// entities in pixels.
func (c RuntimeConfig) ViewportPx() float64 {
	px := c.CellPx
	if px <= 0 {
		px = 10
	}
	return float64(c.ScreenW * px)
}
