package terminal

import "github.com/gdamore/tcell/v2"

// RGB represents a 24-bit color
// Default marks the terminal palette color; channels are ignored when set
type RGB struct {
	R, G, B uint8
	Default bool
}

var (
	// RGBBlack is the zero value
	RGBBlack = RGB{}
	// RGBDefault defers to the terminal default color, so unstyled cells inherit the user's palette
	RGBDefault = RGB{Default: true}
)

// IsDefault reports whether the color defers to the terminal palette
func (c RGB) IsDefault() bool {
	return c.Default
}

// tcellColor converts to a tcell color
func (c RGB) tcellColor() tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
