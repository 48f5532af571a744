package app

import (
	"sync"

	"github.com/lixenwraith/pulseshitter/terminal"
)

// fakeTerm is an in-memory Surface and EventSource
// Fini releases blocked readers with ErrClosed, matching the tcell screen
type fakeTerm struct {
	mu sync.Mutex

	w, h    int
	initErr error
	drawErr error
	failAt  int // Draw call number that returns drawErr, 1-based

	inits, finis, draws int
	mouse               bool
	cursorShown         bool
	last                *terminal.Frame

	events    chan terminal.Event
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeTerm(w, h int) *fakeTerm {
	return &fakeTerm{
		w:      w,
		h:      h,
		events: make(chan terminal.Event, 64),
		closed: make(chan struct{}),
	}
}

func (f *fakeTerm) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.initErr != nil {
		return f.initErr
	}
	f.inits++
	return nil
}

func (f *fakeTerm) Fini() {
	f.mu.Lock()
	f.finis++
	f.mu.Unlock()
	f.closeOnce.Do(func() { close(f.closed) })
}

func (f *fakeTerm) EnableMouse() {
	f.mu.Lock()
	f.mouse = true
	f.mu.Unlock()
}

func (f *fakeTerm) DisableMouse() {
	f.mu.Lock()
	f.mouse = false
	f.mu.Unlock()
}

func (f *fakeTerm) ShowCursor() {
	f.mu.Lock()
	f.cursorShown = true
	f.mu.Unlock()
}

func (f *fakeTerm) HideCursor() {
	f.mu.Lock()
	f.cursorShown = false
	f.mu.Unlock()
}

func (f *fakeTerm) Size() (int, int) {
	return f.w, f.h
}

func (f *fakeTerm) Draw(paint func(*terminal.Frame)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.finis > 0 {
		return terminal.ErrClosed
	}
	f.draws++
	if f.drawErr != nil && f.draws >= f.failAt {
		return f.drawErr
	}

	frame := &terminal.Frame{Width: f.w, Height: f.h, Cells: make([]terminal.Cell, f.w*f.h)}
	for i := range frame.Cells {
		frame.Cells[i] = terminal.BlankCell
	}
	paint(frame)
	f.last = frame
	return nil
}

func (f *fakeTerm) ReadEvent() (terminal.Event, error) {
	select {
	case ev := <-f.events:
		return ev, nil
	case <-f.closed:
		return terminal.Event{Type: terminal.EventClosed}, terminal.ErrClosed
	}
}

func (f *fakeTerm) snapshot() (inits, finis, draws int, mouse, cursor bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits, f.finis, f.draws, f.mouse, f.cursorShown
}

// scriptSource replays fixed read results, then reports closed
type scriptSource struct {
	mu      sync.Mutex
	results []readResult
}

type readResult struct {
	ev  terminal.Event
	err error
}

func (s *scriptSource) ReadEvent() (terminal.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.results) == 0 {
		return terminal.Event{Type: terminal.EventClosed}, terminal.ErrClosed
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r.ev, r.err
}

func runes(s string) []terminal.Event {
	evs := make([]terminal.Event, 0, len(s))
	for _, r := range s {
		evs = append(evs, terminal.RuneEvent(r, terminal.ModNone))
	}
	return evs
}

var ctrlC = terminal.KeyEvent(terminal.KeyCtrlC, terminal.ModCtrl)
