package app

import (
	"errors"
	"sync"

	"github.com/lixenwraith/pulseshitter/terminal"
)

// ErrQueueClosed is returned by Push after Close
var ErrQueueClosed = errors.New("event queue closed")

// EventQueue is an unbounded FIFO of input events
// Any number of producers, one consumer. Nothing is coalesced or dropped
type EventQueue struct {
	mu     sync.Mutex
	items  []terminal.Event
	head   int
	closed bool
	peak   int
}

// NewEventQueue creates an empty open queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, never blocking
func (q *EventQueue) Push(ev terminal.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, ev)
	if n := len(q.items) - q.head; n > q.peak {
		q.peak = n
	}
	return nil
}

// TryPop removes the oldest event without blocking
// Pending events stay readable after Close
func (q *EventQueue) TryPop() (terminal.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return terminal.Event{}, false
	}
	ev := q.items[q.head]
	q.items[q.head] = terminal.Event{}
	q.head++

	// Compact once the consumed prefix dominates
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return ev, true
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Peak returns the largest backlog observed
func (q *EventQueue) Peak() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.peak
}

// Close rejects further pushes. Safe to call multiple times
func (q *EventQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
