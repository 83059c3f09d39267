package core

// Color tags a screen cell for the styled preview.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorGreen
	ColorRed
	ColorYellow
	ColorCyan
)
