package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal style.
type Color uint8

// Palette. The seven piece colors come first.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorBrightWhite
	ColorGray
)

// Roles for non-piece elements.
const (
	ColorFrame = ColorGray // board border and empty cells
	ColorLabel = ColorGray // HUD captions
	ColorValue = ColorBrightWhite
)
