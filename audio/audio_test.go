package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orbit-merge/event"
	"github.com/lixenwraith/orbit-merge/parameter"
)

// drain streams s to the end and returns the sample count and peak level
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Expected stream to end")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1 || peak == 0 {
			t.Errorf("Wave %d: expected peak in (0,1], got %f", wave, peak)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %f", buf[50][0])
	}
	if !(buf[99][0] > 0 && buf[99][0] < 0.1) {
		t.Errorf("Expected near-silent tail, got %f", buf[99][0])
	}
}

func TestMergePitch(t *testing.T) {
	if got := MergePitch(1); got != parameter.MergeBaseHz {
		t.Errorf("Expected base pitch at rank 1, got %f", got)
	}
	if got := MergePitch(13); math.Abs(got-2*parameter.MergeBaseHz) > 1e-9 {
		t.Errorf("Expected an octave twelve ranks up, got %f", got)
	}
}

func TestCuesFinite(t *testing.T) {
	cfg := DefaultConfig()
	tier, err := CreateTierUpSound(cfg)
	if err != nil {
		t.Fatalf("Expected tier-up sound, got %v", err)
	}
	for name, s := range map[string]beep.Streamer{
		"launch":    CreateLaunchSound(cfg),
		"merge":     CreateMergeSound(cfg, 4),
		"tier-up":   tier,
		"game-over": CreateGameOverSound(cfg),
	} {
		if n, _ := drain(t, s); n == 0 {
			t.Errorf("%s: expected samples", name)
		}
	}
}

// TestSoundManagerGracefulDegradation verifies cues are dropped without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()
	sm.Play(CueLaunch, 0)
	sm.Play(CueMerge, 3)
	sm.Cleanup()
}

type fakePlayer struct {
	cues  []Cue
	ranks []int
}

func (f *fakePlayer) Play(c Cue, rank int) {
	f.cues = append(f.cues, c)
	f.ranks = append(f.ranks, rank)
}

func TestEventHandler(t *testing.T) {
	p := &fakePlayer{}
	h := NewEventHandler(p)

	h.HandleEvent(nil, event.GameEvent{Type: event.EventLaunch})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventRankUp, Payload: &event.RankUpPayload{Rank: 5}})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventDifficultyTierUp})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventGameOver})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventWarningChanged})

	want := []Cue{CueLaunch, CueMerge, CueTierUp, CueGameOver}
	if len(p.cues) != len(want) {
		t.Fatalf("Expected %d cues, got %v", len(want), p.cues)
	}
	for i, c := range want {
		if p.cues[i] != c {
			t.Errorf("Cue %d: expected %s, got %s", i, c, p.cues[i])
		}
	}
	if p.ranks[1] != 5 {
		t.Errorf("Expected merge rank 5, got %d", p.ranks[1])
	}
}
