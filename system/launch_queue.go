package system

import (
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// Preview is the ball parked on the orbit, waiting to be launched
type Preview struct {
	Rank   int
	Radius float64
	Pos    vmath.Vec2
}

// LaunchQueue holds the upcoming launch ranks, front first
type LaunchQueue struct {
	cfg   QueueConfig
	rng   *vmath.FastRand
	ranks []int
}

// NewLaunchQueue creates a queue filled to its lookahead depth
func NewLaunchQueue(cfg QueueConfig, rng *vmath.FastRand) *LaunchQueue {
	if cfg.Lookahead < 1 {
		cfg.Lookahead = 1
	}
	cfg.SpawnMaxRank = parameter.ClampRank(cfg.SpawnMaxRank)
	q := &LaunchQueue{
		cfg:   cfg,
		rng:   rng,
		ranks: make([]int, 0, cfg.Lookahead),
	}
	q.fill()
	return q
}

func (q *LaunchQueue) sample() int {
	return q.rng.Intn(q.cfg.SpawnMaxRank + 1)
}

func (q *LaunchQueue) fill() {
	for len(q.ranks) < q.cfg.Lookahead {
		q.ranks = append(q.ranks, q.sample())
	}
}

// PeekNext returns the front rank without consuming it
func (q *LaunchQueue) PeekNext() int {
	return q.ranks[0]
}

// Advance consumes the front rank and tops the queue back up
func (q *LaunchQueue) Advance() int {
	front := q.ranks[0]
	copy(q.ranks, q.ranks[1:])
	q.ranks = q.ranks[:len(q.ranks)-1]
	q.fill()
	return front
}

// Reset discards pending ranks and draws fresh ones
func (q *LaunchQueue) Reset() {
	q.ranks = q.ranks[:0]
	q.fill()
}

// Upcoming returns a copy of the queued ranks, front first
func (q *LaunchQueue) Upcoming() []int {
	out := make([]int, len(q.ranks))
	copy(out, q.ranks)
	return out
}

// Len returns the queue depth
func (q *LaunchQueue) Len() int {
	return len(q.ranks)
}
