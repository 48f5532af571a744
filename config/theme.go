package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
)

// ParseColor accepts the lipgloss color syntax: "#rrggbb", "#rgb", or an ANSI index 0-255
// An empty string selects the terminal default
func ParseColor(s string) (terminal.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return terminal.RGBDefault, nil
	}

	var c colorful.Color
	if strings.HasPrefix(s, "#") {
		var err error
		if c, err = colorful.Hex(s); err != nil {
			return terminal.RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
	} else {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 255 {
			return terminal.RGB{}, fmt.Errorf("invalid color %q: want #rrggbb or 0-255", s)
		}
		c = termenv.ConvertToRGB(termenv.ANSI256Color(n))
	}

	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}, nil
}

// Parse resolves every theme color, keeping the default field backgrounds
func (t ThemeConfig) Parse() (tui.Theme, error) {
	theme := tui.DefaultTheme
	fields := []struct {
		name string
		src  string
		dst  *terminal.RGB
	}{
		{"accent", t.Accent, &theme.Accent},
		{"text", t.Text, &theme.Text},
		{"muted", t.Muted, &theme.Muted},
		{"error", t.Error, &theme.Error},
		{"success", t.Success, &theme.Success},
	}
	for _, f := range fields {
		c, err := ParseColor(f.src)
		if err != nil {
			return tui.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}
