package app

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/pulseshitter/terminal"
)

// Crash restores the terminal, reports the panic value with a stack trace and exits 1
// Output uses \r\n since the tty may still be in raw mode when this runs
func Crash(label string, r any) {
	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	os.Stderr.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", label, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}
