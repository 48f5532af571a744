//go:build !linux

package terminal

import (
	"os"

	"golang.org/x/term"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resetTerminalMode is a no-op where TCGETS is unavailable
func resetTerminalMode() {}
