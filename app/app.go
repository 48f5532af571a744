// Package app runs the terminal session, the input reader and the render loop.
package app

import (
	"context"
	"log"

	"github.com/lixenwraith/pulseshitter/audio"
	"github.com/lixenwraith/pulseshitter/input"
	"github.com/lixenwraith/pulseshitter/service"
	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
	"github.com/lixenwraith/pulseshitter/view"
)

// Config collects everything App needs beyond the terminal itself
type Config struct {
	Loop    Options
	Session SessionConfig
	Audio   audio.Config
	Theme   tui.Theme
	Keys    *input.KeyTable // nil for defaults
}

// App owns the service hub, the shared view cell and the render loop
type App struct {
	hub     *service.Hub
	session *Session
	player  *audio.Player
	cell    *view.Cell
	loop    *Loop
	reg     *status.Registry
}

// New wires the session and audio services around an initial Setup view
func New(surface terminal.Surface, src terminal.EventSource, cfg Config, reg *status.Registry) (*App, error) {
	if reg == nil {
		reg = status.NewRegistry()
	}

	if cfg.Theme == (tui.Theme{}) {
		cfg.Theme = tui.DefaultTheme
	}

	session := NewSession(surface, src, reg, cfg.Session)
	player := audio.NewPlayer(cfg.Audio)

	hub := service.NewHub()
	for _, svc := range []service.Service{session, player} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}

	cell := view.NewCell(view.Default(
		view.WithTheme(cfg.Theme),
		view.WithFeedback(player),
		view.WithKeyTable(cfg.Keys),
	))

	loopOpts := cfg.Loop
	if loopOpts.Banner == (terminal.RGB{}) {
		loopOpts.Banner = cfg.Theme.Accent
	}

	return &App{
		hub:     hub,
		session: session,
		player:  player,
		cell:    cell,
		loop:    NewLoop(surface, session.Queue(), cell, reg, loopOpts),
		reg:     reg,
	}, nil
}

// Run starts every service, runs the loop in the foreground, then stops services
// The terminal is restored on every return path, including a panic out of the loop
func (a *App) Run(ctx context.Context) error {
	if err := a.hub.InitAll(); err != nil {
		return err
	}
	defer func() {
		if err := a.hub.StopAll(); err != nil {
			log.Printf("app: stop: %v", err)
		}
		log.Printf("app: shutdown %s", a.reg.Summary())
	}()

	if err := a.hub.StartAll(); err != nil {
		return err
	}
	return a.loop.Run(ctx)
}

// Session returns the terminal session service
func (a *App) Session() *Session {
	return a.session
}

// Cell returns the shared view cell
func (a *App) Cell() *view.Cell {
	return a.cell
}

// Registry returns the runtime counters
func (a *App) Registry() *status.Registry {
	return a.reg
}
