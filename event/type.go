// Package event carries game notifications from the session to presentation handlers
package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventGameStart signals NotStarted -> Playing on first input
	// Trigger: Session.OnInput | Payload: nil
	EventGameStart

	// EventLaunch signals a preview ball promoted to a world body
	// Trigger: Session.launch | Payload: *LaunchPayload
	EventLaunch

	// EventPreviewReady signals the next preview is selectable
	// Trigger: deferred refill or reset | Payload: *PreviewPayload
	EventPreviewReady

	// EventRankUp signals a merge that produced a higher-rank ball
	// Trigger: MergeReactor via Session | Payload: *RankUpPayload
	EventRankUp

	// EventDifficultyTierUp signals the orbit speed tier increased
	// Trigger: score crossing a tier boundary | Payload: *TierUpPayload
	EventDifficultyTierUp

	// EventWarningChanged signals the warning ring turned on or off
	// Trigger: BoundaryMonitor verdict differs from last tick | Payload: *WarningPayload
	EventWarningChanged

	// EventGameOver signals Playing -> Over, emitted once per round
	// Trigger: BoundaryMonitor | Payload: *GameOverPayload
	EventGameOver

	// EventSessionReset signals the session returned to NotStarted
	// Trigger: Session.Reset | Payload: nil
	EventSessionReset
)

// GameEvent is a single notification; Tick is the session tick it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
