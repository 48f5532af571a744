package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
)

// readerJoinTimeout bounds how long Stop waits for the input goroutine
const readerJoinTimeout = 100 * time.Millisecond

// SessionConfig selects optional terminal modes
type SessionConfig struct {
	Mouse bool
}

// Session owns the terminal for the process lifetime as a Service
// It enters raw mode on Init, runs the input reader between Start and Stop,
// and restores the terminal exactly once
type Session struct {
	surface terminal.Surface
	queue   *EventQueue
	reader  *InputReader
	cfg     SessionConfig

	mu      sync.Mutex
	opened  bool
	stopped bool
	cancel  context.CancelFunc

	cleanups *atomic.Int64
	mouse    *atomic.Bool
}

// NewSession wires surface and src to a fresh event queue
func NewSession(surface terminal.Surface, src terminal.EventSource, reg *status.Registry, cfg SessionConfig) *Session {
	q := NewEventQueue()
	return &Session{
		surface:  surface,
		queue:    q,
		reader:   NewInputReader(src, q, reg),
		cfg:      cfg,
		cleanups: reg.Ints.Get(status.SessionCleanup),
		mouse:    reg.Bools.Get(status.SessionMouse),
	}
}

// Name implements Service
func (s *Session) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *Session) Dependencies() []string {
	return nil
}

// Init implements Service
// Enters raw mode and the alternate screen, then enables mouse capture
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if err := s.surface.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if s.cfg.Mouse {
		s.surface.EnableMouse()
		s.mouse.Store(true)
	}
	s.surface.HideCursor()
	s.opened = true
	return nil
}

// Start implements Service - launches the input reader
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.stopped || s.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.reader.Start(ctx)
	return nil
}

// Stop implements Service - restores the terminal and joins the reader
// Only the first call after a successful Init does any work
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.stopped {
		return nil
	}
	s.stopped = true

	if s.cancel != nil {
		s.cancel()
	}
	s.surface.DisableMouse()
	s.mouse.Store(false)
	s.surface.ShowCursor()
	// Fini leaves the alternate screen and raw mode, and unblocks ReadEvent
	s.surface.Fini()

	if s.reader.Wait(readerJoinTimeout) {
		s.queue.Close()
	} else {
		log.Printf("terminal: input reader still blocked after %v", readerJoinTimeout)
	}

	s.cleanups.Add(1)
	return nil
}

// Close is Stop for callers outside the hub
func (s *Session) Close() {
	_ = s.Stop()
}

// Surface returns the draw target
func (s *Session) Surface() terminal.Surface {
	return s.surface
}

// Queue returns the event channel fed by the reader
func (s *Session) Queue() *EventQueue {
	return s.queue
}

// Cleanups returns how many times the terminal was restored
func (s *Session) Cleanups() int64 {
	return s.cleanups.Load()
}
