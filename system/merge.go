package system

import (
	"math"

	"github.com/lixenwraith/orbit-merge/component"
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// MergeResult describes one completed merge
type MergeResult struct {
	Body       physics.BodyID
	Rank       int
	Pos        vmath.Vec2
	ScoreDelta int
	Consumed   [2]physics.BodyID
}

// MergeSystem turns equal-rank contact pairs into one body of the next rank
type MergeSystem struct {
	cfg   MergeConfig
	world physics.World
	balls *component.BallStore
	rng   *vmath.FastRand
}

func NewMergeSystem(cfg MergeConfig, world physics.World, balls *component.BallStore, rng *vmath.FastRand) *MergeSystem {
	return &MergeSystem{
		cfg:   cfg,
		world: world,
		balls: balls,
		rng:   rng,
	}
}

// ScoreFor returns the score awarded for producing a body of the given rank
func (m *MergeSystem) ScoreFor(rank int) int {
	return (rank + 1) * m.cfg.ScoreUnit
}

// React processes contact-start pairs in order
// A body takes part in at most one merge per call; consumed records are dropped before returning
func (m *MergeSystem) React(contacts []physics.Contact) []MergeResult {
	if len(contacts) == 0 {
		return nil
	}

	var results []MergeResult
	var consumed []physics.BodyID

	for _, c := range contacts {
		a, okA := m.balls.Get(c.A)
		b, okB := m.balls.Get(c.B)
		if !okA || !okB || a.Consumed || b.Consumed {
			continue
		}
		if a.Rank != b.Rank || a.Rank >= parameter.MaxRank {
			continue
		}
		sa, okA := m.world.Body(c.A)
		sb, okB := m.world.Body(c.B)
		if !okA || !okB {
			continue
		}

		a.Consumed = true
		b.Consumed = true
		consumed = append(consumed, c.A, c.B)
		m.world.RemoveBodies(c.A, c.B)

		rank := a.Rank + 1
		mid := vmath.V2Midpoint(sa.Pos, sb.Pos)
		id, rec := SpawnBall(m.world, m.balls, rank, mid, m.cfg.Material)
		m.world.SetVelocity(id, vmath.V2(
			m.rng.Range(-m.cfg.Impulse, m.cfg.Impulse),
			m.rng.Range(-m.cfg.Impulse, m.cfg.Impulse),
		))
		if m.cfg.SpawnScale > 1 {
			m.world.ScaleBody(id, m.cfg.SpawnScale, m.cfg.SpawnScale)
			rec.Settling = true
		}
		rec.TargetRadius = parameter.RankRadius(rank)

		results = append(results, MergeResult{
			Body:       id,
			Rank:       rank,
			Pos:        mid,
			ScoreDelta: m.ScoreFor(rank),
			Consumed:   [2]physics.BodyID{c.A, c.B},
		})
	}

	m.balls.RemoveBatch(consumed)
	return results
}

// Settle shrinks every settling body one step toward its nominal radius
func (m *MergeSystem) Settle() {
	for _, id := range m.balls.IDs() {
		rec, ok := m.balls.Get(id)
		if !ok || !rec.Settling {
			continue
		}
		st, ok := m.world.Body(id)
		if !ok {
			rec.Settling = false
			continue
		}
		if st.Radius <= rec.TargetRadius+m.cfg.SettleEpsilon {
			rec.Settling = false
			continue
		}

		next := math.Max(rec.TargetRadius, st.Radius*m.cfg.ShrinkFactor)
		scale := next / st.Radius
		m.world.ScaleBody(id, scale, scale)
		if next <= rec.TargetRadius+m.cfg.SettleEpsilon {
			rec.Settling = false
		}
	}
}
