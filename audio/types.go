package audio

import (
	"errors"
	"time"
)

// Sound identifies a feedback effect
type Sound int

const (
	SoundReject  Sound = iota // Rejected input buzz
	SoundConfirm              // Two-note completion chime
	soundCount
)

var soundNames = [soundCount]string{
	SoundReject:  "reject",
	SoundConfirm: "confirm",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Reject buzz
const (
	rejectFreq     = 100.0
	rejectDuration = 120 * time.Millisecond
	rejectAttack   = 5 * time.Millisecond
	rejectRelease  = 40 * time.Millisecond
)

// Confirm chime, B5 then E6
const (
	confirmNote1Freq     = 987.77
	confirmNote2Freq     = 1318.51
	confirmNote1Duration = 80 * time.Millisecond
	confirmNote2Duration = 280 * time.Millisecond
	confirmAttack        = 5 * time.Millisecond
	confirmNote1Release  = 40 * time.Millisecond
	confirmNote2Release  = 200 * time.Millisecond
)

// ErrUnknownSound is returned when building a streamer for an undefined sound
var ErrUnknownSound = errors.New("unknown sound")
