package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors; games stay terminal-agnostic.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
