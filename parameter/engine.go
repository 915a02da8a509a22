package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step; one physics step per tick
	TickInterval = time.Second / 60

	// EventQueueInitialCap is the starting capacity of the per-session event queue
	EventQueueInitialCap = 64
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "orbit-merge.log"
	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// EnvPrefix is prepended to every environment override key
const EnvPrefix = "ORBIT_MERGE_"
