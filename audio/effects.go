package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a finite oscillator; noise is seeded so cues replay identically
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
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
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Range(-1, 1)
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

// NewEnvelope shapes s over duration; sustain is whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(att, total-rel),
		total:        total,
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return math.Max(0, float64(e.total-e.position)/float64(e.release))
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// MergePitch returns the merge cue frequency; each rank above 1 adds a semitone
func MergePitch(rank int) float64 {
	return parameter.MergeBaseHz * math.Pow(2, float64(rank-1)/12)
}

// CreateLaunchSound is a short square blip
func CreateLaunchSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(parameter.LaunchToneHz, parameter.LaunchToneDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.LaunchToneDuration, 2*time.Millisecond, parameter.LaunchToneDuration/2, rate)
	return newVolume(shaped, 0.4*cfg.Volume)
}

// CreateMergeSound is a sine pluck with an octave overtone, pitched by rank
func CreateMergeSound(cfg Config, rank int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := MergePitch(rank)

	fund := NewOscillator(freq, parameter.MergeToneDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.MergeToneDuration, parameter.MergeToneAttack, parameter.MergeToneRelease, rate)
	over := NewOscillator(freq*2, parameter.MergeToneDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.MergeToneDuration, parameter.MergeToneAttack, parameter.MergeToneRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume)
}

// CreateTierUpSound is a pure rising pair of tones
func CreateTierUpSound(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.TierUpToneDuration / 2

	low, err := generators.SineTone(rate, parameter.TierUpToneHz)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(rate, parameter.TierUpToneHz*1.5)
	if err != nil {
		return nil, err
	}

	seq := beep.Seq(
		NewEnvelope(beep.Take(rate.N(half), low), half, 5*time.Millisecond, 20*time.Millisecond, rate),
		NewEnvelope(beep.Take(rate.N(half), high), half, 5*time.Millisecond, 60*time.Millisecond, rate),
	)
	return newVolume(seq, 0.5*cfg.Volume), nil
}

// CreateGameOverSound is a low saw buzz over a noise burst
func CreateGameOverSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GameOverDuration

	buzz := NewEnvelope(NewOscillator(parameter.GameOverBuzzHz, d, WaveSaw, rate), d, 10*time.Millisecond, d/2, rate)
	noise := NewEnvelope(NewOscillator(0, d/3, WaveNoise, rate), d/3, time.Millisecond, d/3, rate)

	mixed := beep.Mix(
		newVolume(buzz, 0.6),
		newVolume(noise, 0.2),
	)
	return newVolume(mixed, cfg.Volume)
}
