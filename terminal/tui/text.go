package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate truncates string with … suffix if its display width exceeds maxW
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// PadRight pads string with spaces to display width
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// RuneLen returns display width in cells, wide runes count as two
func RuneLen(s string) int {
	return runewidth.StringWidth(s)
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
