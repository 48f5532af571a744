package audio

// Config controls feedback playback
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 to 1.0
	SampleRate int
}

// DefaultConfig returns muted playback at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     0.5,
		SampleRate: 48000,
	}
}

// normalized clamps volume and fills a missing sample rate
func (c Config) normalized() Config {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	return c
}
