package audio

import (
	"time"

	"github.com/lixenwraith/orbit-merge/parameter"
)

// Config controls the cue synthesizer
type Config struct {
	Enabled        bool          `toml:"enabled" env:"ENABLED"`
	Volume         float64       `toml:"volume" env:"VOLUME"`
	SampleRate     int           `toml:"sample_rate" env:"SAMPLE_RATE"`
	BufferDuration time.Duration `toml:"buffer_duration" env:"BUFFER_DURATION"`
}

// DefaultConfig returns audio defaults
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		Volume:         parameter.AudioVolume,
		SampleRate:     parameter.AudioSampleRate,
		BufferDuration: parameter.AudioBufferDuration,
	}
}
