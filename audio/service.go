package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays feedback sounds through the beep speaker as a Service
// Degrades to a silent no-op when disabled by config or when no output device is available
type Player struct {
	cfg Config

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	started     bool

	disabled atomic.Bool
	played   atomic.Int64
}

// NewPlayer creates a player; nothing touches the audio device until Init
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg.normalized(),
		mixer: &beep.Mixer{},
	}
}

// Name implements Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.disabled.Load() {
		return nil
	}
	if !p.cfg.Enabled {
		p.disabled.Store(true)
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		log.Printf("audio: speaker unavailable, feedback disabled: %v", err)
		p.disabled.Store(true)
		return nil
	}
	p.initialized = true
	return nil
}

// Start implements Service
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.started {
		return nil
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Stop implements Service
// Silences queued sounds; the speaker itself stays open for the process lifetime
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
	return nil
}

// Play queues s on the mixer, returns false when nothing was queued
func (p *Player) Play(s Sound) bool {
	if p.disabled.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return false
	}

	st, err := NewSound(s, beep.SampleRate(p.cfg.SampleRate), p.cfg.Volume)
	if err != nil {
		log.Printf("audio: %v", err)
		return false
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// Reject plays the rejected-input buzz
func (p *Player) Reject() {
	p.Play(SoundReject)
}

// Confirm plays the completion chime
func (p *Player) Confirm() {
	p.Play(SoundConfirm)
}

// IsDisabled returns true if audio is unavailable or turned off
func (p *Player) IsDisabled() bool {
	return p.disabled.Load()
}

// Played returns how many sounds were queued
func (p *Player) Played() int64 {
	return p.played.Load()
}
