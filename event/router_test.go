package event

import (
	"testing"
)

type recorder struct {
	types []EventType
	seen  []GameEvent
}

func (r *recorder) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	r.seen = append(r.seen, ev)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue(2)
	q.Push(GameEvent{Type: EventLaunch, Tick: 1})
	q.Push(GameEvent{Type: EventRankUp, Tick: 2})
	q.Push(GameEvent{Type: EventGameOver, Tick: 3})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 3 || got[0].Tick != 1 || got[2].Tick != 3 {
		t.Errorf("Expected FIFO order, got %+v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("Expected nil on empty consume")
	}
}

func TestRouterDispatchByType(t *testing.T) {
	q := NewEventQueue(4)
	r := NewRouter[*int](q)

	merges := &recorder{types: []EventType{EventRankUp}}
	all := &recorder{types: []EventType{EventRankUp, EventGameOver}}
	r.Register(merges)
	r.Register(all)

	q.Push(GameEvent{Type: EventRankUp})
	q.Push(GameEvent{Type: EventGameOver})
	q.Push(GameEvent{Type: EventLaunch})

	calls := 0
	n := r.DispatchAll(&calls)

	if n != 3 {
		t.Errorf("Expected 3 events dispatched, got %d", n)
	}
	if calls != 3 {
		t.Errorf("Expected 3 handler calls, got %d", calls)
	}
	if len(merges.seen) != 1 || len(all.seen) != 2 {
		t.Errorf("Expected 1 and 2 deliveries, got %d and %d", len(merges.seen), len(all.seen))
	}
	if r.HandlerCount(EventRankUp) != 2 || r.HandlerCount(EventLaunch) != 0 {
		t.Error("Unexpected handler counts")
	}
}

func TestRouterDrainsEventsPushedByHandlers(t *testing.T) {
	q := NewEventQueue(4)
	r := NewRouter[*int](q)

	var order []EventType
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventRankUp, EventDifficultyTierUp},
		Fn: func(_ *int, ev GameEvent) {
			order = append(order, ev.Type)
			if ev.Type == EventRankUp {
				q.Push(GameEvent{Type: EventDifficultyTierUp})
			}
		},
	})

	q.Push(GameEvent{Type: EventRankUp})
	var ctx int
	r.DispatchAll(&ctx)

	if len(order) != 2 || order[1] != EventDifficultyTierUp {
		t.Errorf("Expected follow-up event in same dispatch, got %v", order)
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventGameOver.String() != "GameOver" {
		t.Errorf("Expected GameOver, got %s", EventGameOver.String())
	}
	if EventType(999).String() != "EventType(999)" {
		t.Errorf("Unexpected name for unknown type: %s", EventType(999).String())
	}
	et, ok := GetEventType("RankUp")
	if !ok || et != EventRankUp {
		t.Errorf("Expected RankUp lookup, got %v %v", et, ok)
	}
	if _, ok := GetEventType("Nope"); ok {
		t.Error("Expected unknown name lookup to fail")
	}
}
