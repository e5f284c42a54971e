package core

import "strings"

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal palette entry.
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
	colorCount
)

// colorNames is indexed by Color; sprite sheets refer to colors by these names.
var colorNames = [colorCount]string{
	"default",
	"red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_red", "bright_green", "bright_yellow", "bright_blue",
	"bright_magenta", "bright_cyan", "bright_white",
	"orange", "gray",
}

// String returns the sheet name of c.
func (c Color) String() string {
	if c >= colorCount {
		return "default"
	}
	return colorNames[c]
}

// ParseColor looks up a color by name, ignoring case and surrounding space.
// An empty name is ColorDefault.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorDefault, true
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}
