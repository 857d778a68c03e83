package core

// Color is the foreground color of a screen cell.
// Values map to ANSI colors in the platform renderer.
type Color uint8

// Colors used by the brick field, the ball, the paddle and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
)
