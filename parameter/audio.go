package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioVolume         = 0.6
)

// Cue shapes
const (
	LaunchToneHz       = 660.0
	LaunchToneDuration = 60 * time.Millisecond

	// MergeBaseHz is the rank 1 merge pitch, each further rank raises a semitone
	MergeBaseHz        = 330.0
	MergeToneDuration  = 120 * time.Millisecond
	MergeToneAttack    = 5 * time.Millisecond
	MergeToneRelease   = 60 * time.Millisecond
	TierUpToneHz       = 880.0
	TierUpToneDuration = 200 * time.Millisecond
	GameOverBuzzHz     = 110.0
	GameOverDuration   = 600 * time.Millisecond
)
