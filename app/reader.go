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
)

// InputReader moves events from a blocking source into the queue on its own goroutine
type InputReader struct {
	src   terminal.EventSource
	queue *EventQueue

	events *atomic.Int64
	errs   *atomic.Int64

	// onCrash receives a recovered panic; defaults to Crash
	onCrash func(any)

	started atomic.Bool
	done    chan struct{}
}

// NewInputReader binds src to q, counting into reg
func NewInputReader(src terminal.EventSource, q *EventQueue, reg *status.Registry) *InputReader {
	return &InputReader{
		src:     src,
		queue:   q,
		events:  reg.Ints.Get(status.ReaderEvents),
		errs:    reg.Ints.Get(status.ReaderErrors),
		onCrash: func(r any) { Crash("INPUT READER", r) },
		done:    make(chan struct{}),
	}
}

// Start launches the read loop. Calling it again is a no-op
// The loop ends when ctx is done or the source reports ErrClosed
func (r *InputReader) Start(ctx context.Context) {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	go r.run(ctx)
}

func (r *InputReader) run(ctx context.Context) {
	defer close(r.done)
	defer func() {
		if p := recover(); p != nil {
			r.onCrash(p)
		}
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		ev, err := r.src.ReadEvent()
		if errors.Is(err, terminal.ErrClosed) {
			return
		}
		if err != nil {
			r.errs.Add(1)
			log.Printf("input: read: %v", err)
			continue
		}
		// A read that completes after cancellation is dropped with the session
		if ctx.Err() != nil {
			return
		}

		if err := r.queue.Push(ev); err != nil {
			panic(fmt.Sprintf("input: push %s event: %v", ev.Type, err))
		}
		r.events.Add(1)
	}
}

// Wait blocks until the read loop exits or timeout elapses
// Returns true if the loop has exited; a reader that was never started counts as exited
func (r *InputReader) Wait(timeout time.Duration) bool {
	if !r.started.Load() {
		return true
	}
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
