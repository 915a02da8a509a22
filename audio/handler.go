package audio

import (
	"github.com/lixenwraith/orbit-merge/engine"
	"github.com/lixenwraith/orbit-merge/event"
)

// EventHandler turns session events into cues
type EventHandler struct {
	player Player
}

func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

func (h *EventHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLaunch,
		event.EventRankUp,
		event.EventDifficultyTierUp,
		event.EventGameOver,
	}
}

func (h *EventHandler) HandleEvent(_ *engine.Session, ev event.GameEvent) {
	switch ev.Type {
	case event.EventLaunch:
		h.player.Play(CueLaunch, 0)
	case event.EventRankUp:
		rank := 0
		if p, ok := ev.Payload.(*event.RankUpPayload); ok {
			rank = p.Rank
		}
		h.player.Play(CueMerge, rank)
	case event.EventDifficultyTierUp:
		h.player.Play(CueTierUp, 0)
	case event.EventGameOver:
		h.player.Play(CueGameOver, 0)
	}
}

var _ event.Handler[*engine.Session] = (*EventHandler)(nil)
