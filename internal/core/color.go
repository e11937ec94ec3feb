package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// BitColor maps a bit index to a display color so every object gated by the
// same bit shares a hue. Indexes past the palette wrap around.
func BitColor(bit int) Color {
	palette := []Color{
		ColorBrightRed,
		ColorBrightGreen,
		ColorBrightYellow,
		ColorBrightBlue,
		ColorBrightMagenta,
		ColorBrightCyan,
		ColorOrange,
		ColorWhite,
	}
	if bit < 0 {
		return ColorDefault
	}
	return palette[bit%len(palette)]
}
