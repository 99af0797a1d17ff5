package core

// Color is an ANSI 256-color foreground code. The zero value means the
// terminal's default color.
type Color uint8

// Palette used by the cat games.
const (
	ColorDefault      Color = 0
	ColorRed          Color = 1
	ColorYellow       Color = 3
	ColorBrightRed    Color = 9
	ColorBrightGreen  Color = 10
	ColorBrightYellow Color = 11
	ColorBrightCyan   Color = 14
	ColorOrange       Color = 208
	ColorGray         Color = 245
)
