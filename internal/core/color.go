package core

// Color is the foreground color of a screen cell. The terminal renderer
// decides how each value is drawn; games only pick a role.
type Color uint8

const (
	ColorDefault Color = iota // Terminal foreground
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorOrange
	ColorLightBlue
	ColorCyan   // Status line
	ColorGray   // Ghost piece, spent hold
	ColorBright // Counters

	colorCount
)

// Valid reports whether c is one of the predefined colors.
func (c Color) Valid() bool {
	return c < colorCount
}
