package parameter

import "time"

// Launch
const (
	// LaunchSpeed is the initial speed toward the center in units/tick
	LaunchSpeed = 6.0

	// RefillDelay is the pause between a launch and the next selectable preview
	RefillDelay = 500 * time.Millisecond

	// QueueLookahead is the number of upcoming ranks kept in the queue
	QueueLookahead = 2

	// SpawnMaxRank is the highest rank drawn for new balls
	SpawnMaxRank = 3
)

// Orbit
const (
	// BaseOrbitSpeed is the preview angular speed in rad/tick at tier 0
	BaseOrbitSpeed = 0.02

	// OrbitSpeedStep is added per difficulty tier
	OrbitSpeedStep = 0.004
)

// Boundary speed gates, units/tick
const (
	// WarningSpeedGate lets the exempt ball warn once it slows below this
	WarningSpeedGate = 2.0

	// GameOverSpeedGate is the speed a ball must drop under to end the round
	GameOverSpeedGate = 0.5
)

// Merge
const (
	// ScoreUnit multiplies (newRank + 1) per merge
	ScoreUnit = 10

	// MergeSpawnScale enlarges a merged ball before it settles
	MergeSpawnScale = 1.2

	// MergeShrinkFactor is applied to the radius each settling tick
	MergeShrinkFactor = 0.95

	// MergeSettleEpsilon ends settling once radius is this close to nominal
	MergeSettleEpsilon = 0.5

	// MergeImpulse bounds the random velocity of a merged ball on each axis
	MergeImpulse = 0.5
)

// Difficulty
const (
	DifficultyScoreFloor = 1000
	DifficultyScoreStep  = 1000
	DifficultyMaxTier    = 5
)
