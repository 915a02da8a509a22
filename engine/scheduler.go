package engine

import (
	"slices"
	"time"
)

// Task is a deferred callback handle
type Task struct {
	at       time.Duration
	seq      uint64
	fn       func()
	canceled bool
	fired    bool
}

// Cancel prevents the task from running; safe on nil and after firing
func (t *Task) Cancel() {
	if t != nil {
		t.canceled = true
	}
}

// Pending reports whether the task will still run
func (t *Task) Pending() bool {
	return t != nil && !t.canceled && !t.fired
}

// Scheduler runs callbacks against game time, which only moves on Advance
// Tasks due on the same Advance run in (due time, schedule order)
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]*Task, 0, 4)}
}

// Now returns elapsed game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once game time has advanced by d
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{at: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves game time forward and runs due tasks, returns the number run
// Tasks scheduled from a callback run no earlier than the next Advance
func (s *Scheduler) Advance(dt time.Duration) int {
	s.now += dt

	var due []*Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.canceled:
		case t.at <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	slices.SortFunc(due, func(a, b *Task) int {
		if a.at != b.at {
			if a.at < b.at {
				return -1
			}
			return 1
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})

	ran := 0
	for _, t := range due {
		// An earlier callback in this batch may cancel a later one
		if t.canceled {
			continue
		}
		t.fired = true
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of tasks waiting to run
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// CancelAll drops every pending task; game time is kept
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	clear(s.tasks)
	s.tasks = s.tasks[:0]
}
