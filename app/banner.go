package app

import (
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
)

const bannerHeight = 4

// logo rows start one line down inside the banner
var logo = [...]string{
	"█▀█ █░█ █░░ █▀ █▀▀ █▀ █░█ █ ▀█▀ ▀█▀ █▀▀ █▀█",
	"█▀▀ █▄█ █▄▄ ▄█ ██▄ ▄█ █▀█ █ ░█░ ░█░ ██▄ █▀▄",
}

// Layout splits the screen into the fixed banner and the body, inset by a one-column margin
func Layout(root tui.Region) (banner, body tui.Region) {
	rows := tui.SplitV(root.HMargin(1), tui.Length(bannerHeight), tui.Percentage(100))
	return rows[0], rows[1]
}

func drawBanner(r tui.Region, fg terminal.RGB) {
	for i, line := range logo {
		r.TextCenter(1+i, line, fg, terminal.RGBDefault, terminal.AttrNone)
	}
}
