// Package audio synthesizes short cues for game events through the system speaker
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one synthesized sound
type Cue int

const (
	CueLaunch Cue = iota
	CueMerge
	CueTierUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueMerge:
		return "merge"
	case CueTierUp:
		return "tier-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Player plays a cue; rank only matters for CueMerge
type Player interface {
	Play(cue Cue, rank int)
}

// SoundManager owns the speaker and a mixer that all cues are added to
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything; beep has no speaker close so the mixer is just emptied
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play builds the cue and adds it to the mixer
func (sm *SoundManager) Play(cue Cue, rank int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := sm.build(cue, rank)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) build(cue Cue, rank int) beep.Streamer {
	switch cue {
	case CueLaunch:
		return CreateLaunchSound(sm.cfg)
	case CueMerge:
		return CreateMergeSound(sm.cfg, rank)
	case CueTierUp:
		s, err := CreateTierUpSound(sm.cfg)
		if err != nil {
			return nil
		}
		return s
	case CueGameOver:
		return CreateGameOverSound(sm.cfg)
	default:
		return nil
	}
}

var _ Player = (*SoundManager)(nil)
