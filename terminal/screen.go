package terminal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// ErrNotInitialized is returned by Draw before Init
var ErrNotInitialized = errors.New("terminal not initialized")

// Screen implements Surface and EventSource on a tcell screen
type Screen struct {
	scr tcell.Screen

	mu        sync.Mutex
	inited    bool
	finalized bool
	mouse     bool
	frame     Frame

	resized atomic.Bool
	lost    atomic.Pointer[tcell.EventError]

	// Reader-side state, touched only by the ReadEvent goroutine
	lastButtons tcell.ButtonMask
	pasting     bool
	paste       strings.Builder
}

var (
	_ Surface     = (*Screen)(nil)
	_ EventSource = (*Screen)(nil)
)

// NewScreen creates a screen bound to the controlling terminal
// Returns ErrNotTerminal when stdin is not a tty
func NewScreen() (*Screen, error) {
	if !isTerminal() {
		return nil, ErrNotTerminal
	}
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Screen{scr: scr}, nil
}

// NewSimulation creates a screen over tcell's simulation backend
// The simulation handle is returned for event injection and content inspection
func NewSimulation() (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Screen{scr: sim}, sim
}

// Init enters raw mode and the alternate screen, enables bracketed paste
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	if s.inited {
		return nil
	}
	if err := s.scr.Init(); err != nil {
		return err
	}
	s.scr.EnablePaste()
	s.scr.SetStyle(tcell.StyleDefault)
	s.inited = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times, and before Init
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return
	}
	s.finalized = true
	if !s.inited {
		return
	}
	if s.mouse {
		s.scr.DisableMouse()
		s.mouse = false
	}
	s.scr.DisablePaste()
	s.scr.ShowCursor(0, 0)
	s.scr.Fini()
}

// EnableMouse turns on click and drag reporting
func (s *Screen) EnableMouse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() || s.mouse {
		return
	}
	s.scr.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.mouse = true
}

// DisableMouse turns off mouse reporting
func (s *Screen) DisableMouse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() || !s.mouse {
		return
	}
	s.scr.DisableMouse()
	s.mouse = false
}

// ShowCursor makes the cursor visible at the top-left cell
func (s *Screen) ShowCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live() {
		s.scr.ShowCursor(0, 0)
	}
}

func (s *Screen) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live() {
		s.scr.HideCursor()
	}
}

// MouseEnabled reports whether mouse reporting is currently on
func (s *Screen) MouseEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// Size returns current terminal dimensions, zero when not live
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return 0, 0
	}
	return s.scr.Size()
}

// live requires s.mu held
func (s *Screen) live() bool {
	return s.inited && !s.finalized
}

// Draw clears the frame, runs paint, then flushes changed cells
// A pending resize forces a full resync instead of an incremental show
func (s *Screen) Draw(paint func(*Frame)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	if !s.inited {
		return ErrNotInitialized
	}
	if ev := s.lost.Load(); ev != nil {
		return fmt.Errorf("%w: %w", ErrLost, ev)
	}

	w, h := s.scr.Size()
	s.frame.resize(w, h)
	paint(&s.frame)

	for y := 0; y < h; y++ {
		row := s.frame.Cells[y*w : (y+1)*w]
		for x := range row {
			c := row[x]
			if c.Rune == 0 {
				continue
			}
			s.scr.SetContent(x, y, c.Rune, nil, c.style())
		}
	}

	if s.resized.Swap(false) {
		s.scr.Sync()
	} else {
		s.scr.Show()
	}
	return nil
}

// resize reallocates only on growth, then blanks every cell
func (f *Frame) resize(w, h int) {
	n := w * h
	if cap(f.Cells) < n {
		f.Cells = make([]Cell, n)
	}
	f.Cells = f.Cells[:n]
	f.Width, f.Height = w, h
	for i := range f.Cells {
		f.Cells[i] = BlankCell
	}
}

// ReadEvent blocks for the next input event
// Returns ErrClosed after Fini; tcell error events are returned as errors
func (s *Screen) ReadEvent() (Event, error) {
	for {
		raw := s.scr.PollEvent()
		if raw == nil {
			return Event{Type: EventClosed}, ErrClosed
		}

		switch ev := raw.(type) {
		case *tcell.EventError:
			// tcell stops reading the tty after posting this
			s.lost.Store(ev)
			return Event{Type: EventError, Err: ev}, ev

		case *tcell.EventResize:
			s.resized.Store(true)
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}, nil

		case *tcell.EventPaste:
			if ev.Start() {
				s.pasting = true
				s.paste.Reset()
				continue
			}
			s.pasting = false
			return Event{Type: EventPaste, Text: s.paste.String()}, nil

		case *tcell.EventKey:
			if s.pasting {
				appendPaste(&s.paste, ev)
				continue
			}
			return convertKey(ev), nil

		case *tcell.EventMouse:
			return s.convertMouse(ev), nil

		case *tcell.EventFocus:
			return Event{Type: EventFocus, Focused: ev.Focused}, nil
		}
		// Interrupts, clipboard replies and time events are not surfaced
	}
}

func appendPaste(b *strings.Builder, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		b.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		b.WriteByte('\n')
	case tcell.KeyTab:
		b.WriteByte('\t')
	}
}
