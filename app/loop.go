package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
	"github.com/lixenwraith/pulseshitter/view"
)

// ErrDraw wraps a surface failure that ended the loop
var ErrDraw = errors.New("draw failed")

// Step marks a phase of one loop iteration for tracing
type Step uint8

const (
	StepAcquire Step = iota
	StepDraw
	StepPoll
	StepDispatch
	StepRelease
)

func (s Step) String() string {
	switch s {
	case StepAcquire:
		return "acquire"
	case StepDraw:
		return "draw"
	case StepPoll:
		return "poll"
	case StepDispatch:
		return "dispatch"
	case StepRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Options tune the render loop
type Options struct {
	FrameInterval time.Duration // Minimum time between iterations, 0 = unpaced
	MaxFrames     int           // Stop after this many iterations, 0 = unbounded
	DrainEvents   bool          // Dispatch every pending event per iteration instead of one
	Banner        terminal.RGB  // Logo color; zero selects the theme accent
	Trace         func(Step)    // Observes iteration phases, nil to disable
}

// Loop redraws the current view every iteration and dispatches queued input to it
type Loop struct {
	surface terminal.Surface
	queue   *EventQueue
	cell    *view.Cell
	opts    Options

	frames     *atomic.Int64
	dispatched *atomic.Int64
	fps        *status.AtomicFloat
	kind       *status.AtomicString
	queuePeak  *atomic.Int64
}

// NewLoop binds the loop to its surface, input queue and view cell
func NewLoop(surface terminal.Surface, q *EventQueue, cell *view.Cell, reg *status.Registry, opts Options) *Loop {
	return &Loop{
		surface:    surface,
		queue:      q,
		cell:       cell,
		opts:       opts,
		frames:     reg.Ints.Get(status.LoopFrames),
		dispatched: reg.Ints.Get(status.LoopDispatched),
		fps:        reg.Floats.Get(status.LoopFPS),
		kind:       reg.Strings.Get(status.ViewKind),
		queuePeak:  reg.Ints.Get(status.QueuePeak),
	}
}

// Run iterates until Ctrl+C, a draw failure, MaxFrames, or ctx cancellation
// Quit, frame limit and cancellation return nil; draw failure returns an error wrapping ErrDraw
// A panic raised by a view propagates to the caller
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.opts.FrameInterval > 0 {
		ticker := time.NewTicker(l.opts.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	defer func() {
		if secs := time.Since(start).Seconds(); secs > 0 {
			l.fps.Store(float64(l.frames.Load()) / secs)
		}
		l.queuePeak.Store(int64(l.queue.Peak()))
	}()

	for frame := 0; l.opts.MaxFrames <= 0 || frame < l.opts.MaxFrames; frame++ {
		if ctx.Err() != nil {
			log.Printf("loop: context done: %v", context.Cause(ctx))
			return nil
		}

		quit, err := l.step()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("loop: quit after %d frames", l.frames.Load())
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
	}
	return nil
}

// step runs one iteration with the view cell held throughout
func (l *Loop) step() (quit bool, err error) {
	g := l.cell.Acquire()
	l.trace(StepAcquire)
	defer func() {
		g.Release()
		l.trace(StepRelease)
	}()

	current := g.View()
	l.kind.Store(view.KindOf(current).String())

	l.trace(StepDraw)
	err = l.surface.Draw(func(f *terminal.Frame) {
		banner, body := Layout(tui.FromFrame(f))
		drawBanner(banner, l.opts.Banner)
		current.Render(body)
	})
	if err != nil {
		log.Printf("loop: draw: %v", err)
		return false, fmt.Errorf("%w: %w", ErrDraw, err)
	}
	l.frames.Add(1)

	for {
		l.trace(StepPoll)
		ev, ok := l.queue.TryPop()
		if !ok {
			return false, nil
		}
		if ev.IsQuit() {
			return true, nil
		}

		l.trace(StepDispatch)
		current.HandleEvent(ev)
		l.dispatched.Add(1)

		if !l.opts.DrainEvents {
			return false, nil
		}
	}
}

func (l *Loop) trace(s Step) {
	if l.opts.Trace != nil {
		l.opts.Trace(s)
	}
}
