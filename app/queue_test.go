package app

import (
	"sync"
	"testing"

	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueueFIFO verifies events come out in push order across compactions
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	_, ok := q.TryPop()
	assert.False(t, ok)

	for i := 0; i < 500; i++ {
		require.NoError(t, q.Push(terminal.RuneEvent(rune('a'+i%26), terminal.ModNone)))
		if i%3 == 2 {
			// Interleave pops so the head advances past the compaction threshold
			_, ok := q.TryPop()
			require.True(t, ok)
		}
	}

	popped := 500 / 3
	for i := popped; i < 500; i++ {
		ev, ok := q.TryPop()
		require.True(t, ok, "event %d", i)
		assert.Equal(t, rune('a'+i%26), ev.Rune, "event %d", i)
	}
	assert.Zero(t, q.Len())
	assert.Equal(t, 500-popped, q.Peak())
}

// TestQueueClose verifies pushes fail after Close while pending events stay readable
func TestQueueClose(t *testing.T) {
	q := NewEventQueue()
	require.NoError(t, q.Push(terminal.RuneEvent('x', terminal.ModNone)))

	q.Close()
	q.Close()
	assert.ErrorIs(t, q.Push(terminal.RuneEvent('y', terminal.ModNone)), ErrQueueClosed)

	ev, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, 'x', ev.Rune)
	_, ok = q.TryPop()
	assert.False(t, ok)
}

// TestQueueConcurrentProducers verifies per-producer order survives interleaving
func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 4, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = q.Push(terminal.Event{Type: terminal.EventResize, Width: p, Height: i})
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, q.Len())
	next := make([]int, producers)
	for {
		ev, ok := q.TryPop()
		if !ok {
			break
		}
		assert.Equal(t, next[ev.Width], ev.Height, "producer %d out of order", ev.Width)
		next[ev.Width]++
	}
	for p := range next {
		assert.Equal(t, perProducer, next[p])
	}
}
