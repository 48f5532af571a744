package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack/release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// RejectSound is a short harsh buzz
func RejectSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(rejectFreq, rejectDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, rejectDuration, rejectAttack, rejectRelease, rate)
	return newVolume(shaped, vol)
}

// ConfirmSound is a rising two-note chime
func ConfirmSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(confirmNote1Freq, confirmNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, confirmNote1Duration, confirmAttack, confirmNote1Release, rate)

	n2 := NewOscillator(confirmNote2Freq, confirmNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, confirmNote2Duration, confirmAttack, confirmNote2Release, rate)

	// Square lead is louder than the sine tail
	return newVolume(beep.Seq(newVolume(n1Shaped, 0.6), n2Shaped), vol)
}

// NewSound builds the streamer for s
func NewSound(s Sound, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	switch s {
	case SoundReject:
		return RejectSound(rate, vol), nil
	case SoundConfirm:
		return ConfirmSound(rate, vol), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownSound, int(s))
}
