package tui

import "github.com/lixenwraith/pulseshitter/terminal"

// Theme defines semantic colors for TUI components
// terminal.RGBDefault falls through to the terminal palette
type Theme struct {
	Accent  terminal.RGB
	Text    terminal.RGB
	Muted   terminal.RGB
	Error   terminal.RGB
	Success terminal.RGB

	FieldBg terminal.RGB
	FocusBg terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Accent:  terminal.RGB{R: 30, G: 215, B: 96},
	Text:    terminal.RGB{R: 220, G: 220, B: 220},
	Muted:   terminal.RGB{R: 140, G: 140, B: 150},
	Error:   terminal.RGB{R: 255, G: 80, B: 80},
	Success: terminal.RGB{R: 80, G: 200, B: 80},
	FieldBg: terminal.RGB{R: 35, G: 35, B: 45},
	FocusBg: terminal.RGB{R: 45, G: 45, B: 60},
}
