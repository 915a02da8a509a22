package engine

// Phase is the round lifecycle state
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Trigger is the cause of a phase change
type Trigger uint8

const (
	TriggerInput Trigger = iota
	TriggerBoundary
	TriggerReset
)

func (t Trigger) String() string {
	switch t {
	case TriggerInput:
		return "input"
	case TriggerBoundary:
		return "boundary"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

type transitionKey struct {
	from Phase
	on   Trigger
}

// phaseTransitions is the complete table of legal transitions
var phaseTransitions = map[transitionKey]Phase{
	{PhaseNotStarted, TriggerInput}: PhasePlaying,
	{PhasePlaying, TriggerBoundary}: PhaseOver,
	{PhaseNotStarted, TriggerReset}: PhaseNotStarted,
	{PhasePlaying, TriggerReset}:    PhaseNotStarted,
	{PhaseOver, TriggerReset}:       PhaseNotStarted,
}

// NextPhase looks up the target of a transition, false when it is not legal
func NextPhase(from Phase, on Trigger) (Phase, bool) {
	to, ok := phaseTransitions[transitionKey{from, on}]
	return to, ok
}
