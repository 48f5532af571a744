package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrNotTerminal is returned when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrClosed is returned by surface and source operations after Fini
	ErrClosed = errors.New("terminal closed")
	// ErrLost is returned by Draw once the terminal input stream has failed
	ErrLost = errors.New("terminal lost")
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
// Rune 0 marks the trailing half of a wide character and is skipped on flush
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// BlankCell is a space in the terminal default colors
var BlankCell = Cell{Rune: ' ', Fg: RGBDefault, Bg: RGBDefault}

// style converts cell colors and attributes to a tcell style
func (c Cell) style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg.tcellColor()).Background(c.Bg.tcellColor())
	if c.Attrs == AttrNone {
		return st
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Frame is the cell buffer handed to a draw callback
// Cells are row-major: Cells[y*Width + x]
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// Set writes a cell, ignoring out-of-bounds coordinates
func (f *Frame) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = c
}

// At returns the cell at x, y or a zero cell when out of bounds
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Surface is the platform drawing target
type Surface interface {
	// Init enters raw mode and the alternate screen buffer
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// EnableMouse turns on click, drag and motion reporting
	EnableMouse()

	// DisableMouse turns off mouse reporting
	DisableMouse()

	ShowCursor()
	HideCursor()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Draw clears a frame, passes it to paint, then flushes it to the terminal
	// Returns ErrClosed after Fini, or ErrLost once the input stream has failed
	Draw(paint func(*Frame)) error
}

// EventSource delivers decoded input events
type EventSource interface {
	// ReadEvent blocks until the next event is available
	// Returns ErrClosed once the source is finalized
	ReadEvent() (Event, error)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiBracketPasteOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
