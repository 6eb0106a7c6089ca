package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

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

// Germ palette. Hazards cycle through these so a crowded field stays readable.
var GermColors = []Color{ColorBrightGreen, ColorGreen, ColorBrightMagenta, ColorYellow}

// Fade returns the color a transient effect should use when only frac
// (0..1) of its lifetime remains.
func Fade(c Color, frac float64) Color {
	switch {
	case frac <= 0:
		return ColorDefault
	case frac < 0.5:
		return ColorGray
	default:
		return c
	}
}
