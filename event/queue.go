package event

// EventQueue is a FIFO buffer for game events
// Single-threaded: producers and the consumer run on the session's goroutine
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates a queue with the given initial capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, capacity)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
