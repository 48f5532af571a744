package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func newTestApp(t *testing.T, term *fakeTerm, opts Options) *App {
	t.Helper()
	a, err := New(term, term, Config{Loop: opts, Session: SessionConfig{Mouse: true}}, status.NewRegistry())
	require.NoError(t, err)
	return a
}

// TestAppCleanupOncePerExitPath verifies the terminal is restored exactly once however the loop ends
func TestAppCleanupOncePerExitPath(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, term *fakeTerm, a *App) context.Context
		opts    Options
		wantErr error
		panics  bool
	}{
		{
			name: "quit hotkey",
			prepare: func(t *testing.T, term *fakeTerm, a *App) context.Context {
				term.events <- terminal.RuneEvent('a', terminal.ModNone)
				term.events <- ctrlC
				return context.Background()
			},
		},
		{
			name: "draw failure",
			prepare: func(t *testing.T, term *fakeTerm, a *App) context.Context {
				term.drawErr, term.failAt = errors.New("io"), 3
				return context.Background()
			},
			wantErr: ErrDraw,
		},
		{
			name: "context cancelled",
			prepare: func(t *testing.T, term *fakeTerm, a *App) context.Context {
				ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
				t.Cleanup(cancel)
				return ctx
			},
			opts: Options{FrameInterval: time.Millisecond},
		},
		{
			name: "frame limit",
			prepare: func(t *testing.T, term *fakeTerm, a *App) context.Context {
				return context.Background()
			},
			opts: Options{MaxFrames: 5},
		},
		{
			name: "dashboard panic",
			prepare: func(t *testing.T, term *fakeTerm, a *App) context.Context {
				g := a.Cell().Acquire()
				g.Swap(&view.DashboardView{})
				g.Release()
				return context.Background()
			},
			panics: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := newFakeTerm(80, 24)
			a := newTestApp(t, term, tt.opts)
			ctx := tt.prepare(t, term, a)

			if tt.panics {
				assert.PanicsWithValue(t, view.DashboardNotImplemented, func() { _ = a.Run(ctx) })
			} else {
				err := a.Run(ctx)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			}

			a.Session().Close()
			inits, finis, _, mouse, cursor := term.snapshot()
			assert.Equal(t, 1, inits)
			assert.Equal(t, 1, finis)
			assert.False(t, mouse)
			assert.True(t, cursor)
			assert.Equal(t, int64(1), a.Session().Cleanups())
			assert.Equal(t, int64(1), a.Registry().Ints.Get(status.SessionCleanup).Load())
		})
	}
}

// TestAppInitFailure verifies a terminal entry failure is fatal before any frame is drawn
func TestAppInitFailure(t *testing.T) {
	term := newFakeTerm(80, 24)
	term.initErr = terminal.ErrNotTerminal
	a := newTestApp(t, term, Options{})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, terminal.ErrNotTerminal)
	assert.Contains(t, err.Error(), "terminal init")

	_, finis, draws, _, _ := term.snapshot()
	assert.Zero(t, draws)
	assert.Zero(t, finis)
	assert.Zero(t, a.Session().Cleanups())
}

// TestAppQuitForwardsPriorInput verifies events before Ctrl+C reach the view through the reader
func TestAppQuitForwardsPriorInput(t *testing.T) {
	term := newFakeTerm(80, 24)
	for _, ev := range runes("hey") {
		term.events <- ev
	}
	term.events <- ctrlC
	term.events <- terminal.RuneEvent('!', terminal.ModNone)

	a := newTestApp(t, term, Options{})
	require.NoError(t, a.Run(context.Background()))

	g := a.Cell().Acquire()
	defer g.Release()
	setup, ok := g.View().(*view.SetupView)
	require.True(t, ok)
	assert.Equal(t, "hey", setup.Value(view.FieldSpotifyClientID))
	assert.Equal(t, int64(3), a.Registry().Ints.Get(status.LoopDispatched).Load())
}

// TestAppSimulatedTerminal runs the whole stack on tcell's simulation screen
func TestAppSimulatedTerminal(t *testing.T) {
	scr, sim := terminal.NewSimulation()
	a, err := New(scr, scr, Config{Session: SessionConfig{Mouse: true}}, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	frames := a.Registry().Ints.Get(status.LoopFrames)
	require.Eventually(t, func() bool { return frames.Load() > 0 }, timeout, tick)

	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(timeout):
		t.Fatal("loop did not quit on Ctrl+C")
	}

	g := a.Cell().Acquire()
	defer g.Release()
	setup := g.View().(*view.SetupView)
	assert.Equal(t, "id", setup.Value(view.FieldSpotifyClientID))
	assert.Equal(t, "s", setup.Value(view.FieldSpotifyClientSecret))
	assert.Equal(t, int64(1), a.Session().Cleanups())
	assert.Equal(t, int64(5), a.Registry().Ints.Get(status.ReaderEvents).Load())
}

// TestAppSimulatedTerminalLost verifies a failed tty ends the loop through the draw error path
func TestAppSimulatedTerminalLost(t *testing.T) {
	scr, sim := terminal.NewSimulation()
	a, err := New(scr, scr, Config{}, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	frames := a.Registry().Ints.Get(status.LoopFrames)
	require.Eventually(t, func() bool { return frames.Load() > 0 }, timeout, tick)
	require.NoError(t, sim.PostEvent(tcell.NewEventError(errors.New("tty gone"))))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrDraw)
		assert.ErrorIs(t, err, terminal.ErrLost)
	case <-time.After(timeout):
		t.Fatal("loop kept running on a lost terminal")
	}
	assert.Equal(t, int64(1), a.Session().Cleanups())
	assert.Equal(t, int64(1), a.Registry().Ints.Get(status.ReaderErrors).Load())
}
