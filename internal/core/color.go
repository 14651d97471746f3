package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility, except the
// true-color entries at the end which carry the game's fixed palette.
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

	ColorSilver // #CCCCCC
	ColorGold   // #FFD700
	ColorRose   // #E2496D
	ColorLime   // #54FF44
	ColorSky    // #00A9E8
)

// Hex returns the true-color value for palette entries, or "" for the
// ANSI entries above.
func (c Color) Hex() string {
	switch c {
	case ColorSilver:
		return "#CCCCCC"
	case ColorGold:
		return "#FFD700"
	case ColorRose:
		return "#E2496D"
	case ColorLime:
		return "#54FF44"
	case ColorSky:
		return "#00A9E8"
	default:
		return ""
	}
}
