package app

import (
	"errors"
	"testing"

	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle verifies entry modes, restoration and the single cleanup
func TestSessionLifecycle(t *testing.T) {
	term := newFakeTerm(80, 24)
	reg := status.NewRegistry()
	s := NewSession(term, term, reg, SessionConfig{Mouse: true})

	require.NoError(t, s.Init())
	require.NoError(t, s.Init())
	inits, finis, _, mouse, cursor := term.snapshot()
	assert.Equal(t, 1, inits)
	assert.Zero(t, finis)
	assert.True(t, mouse)
	assert.False(t, cursor)
	assert.True(t, reg.Bools.Get(status.SessionMouse).Load())

	require.NoError(t, s.Start())
	term.events <- terminal.RuneEvent('q', terminal.ModNone)
	require.Eventually(t, func() bool { return s.Queue().Len() == 1 }, timeout, tick)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
	s.Close()

	_, finis, _, mouse, cursor = term.snapshot()
	assert.Equal(t, 1, finis)
	assert.False(t, mouse)
	assert.True(t, cursor)
	assert.Equal(t, int64(1), s.Cleanups())
	assert.ErrorIs(t, s.Queue().Push(terminal.RuneEvent('x', terminal.ModNone)), ErrQueueClosed)

	// Events read before stop remain for inspection
	ev, ok := s.Queue().TryPop()
	require.True(t, ok)
	assert.Equal(t, 'q', ev.Rune)
}

// TestSessionMouseDisabled verifies mouse capture is opt-in
func TestSessionMouseDisabled(t *testing.T) {
	term := newFakeTerm(80, 24)
	s := NewSession(term, term, status.NewRegistry(), SessionConfig{})

	require.NoError(t, s.Init())
	_, _, _, mouse, _ := term.snapshot()
	assert.False(t, mouse)
	s.Close()
}

// TestSessionInitFailure verifies a failed entry is wrapped and needs no cleanup
func TestSessionInitFailure(t *testing.T) {
	term := newFakeTerm(80, 24)
	term.initErr = terminal.ErrNotTerminal
	s := NewSession(term, term, status.NewRegistry(), SessionConfig{Mouse: true})

	err := s.Init()
	require.Error(t, err)
	assert.ErrorIs(t, err, terminal.ErrNotTerminal)
	assert.Contains(t, err.Error(), "terminal init")

	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
	_, finis, _, mouse, _ := term.snapshot()
	assert.Zero(t, finis)
	assert.False(t, mouse)
	assert.Zero(t, s.Cleanups())
}

// TestSessionStopBeforeStart verifies restoration does not depend on the reader having run
func TestSessionStopBeforeStart(t *testing.T) {
	term := newFakeTerm(80, 24)
	s := NewSession(term, term, status.NewRegistry(), SessionConfig{Mouse: true})

	require.NoError(t, s.Init())
	require.NoError(t, s.Stop())
	require.NoError(t, s.Start(), "start after stop is a no-op")

	_, finis, _, _, _ := term.snapshot()
	assert.Equal(t, 1, finis)
	assert.Equal(t, int64(1), s.Cleanups())
	assert.True(t, errors.Is(s.Queue().Push(terminal.Event{}), ErrQueueClosed))
}
