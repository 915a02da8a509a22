package engine

import (
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// BallView is a read-only ball for presentation
type BallView struct {
	ID       physics.BodyID
	Rank     int
	Pos      vmath.Vec2
	Radius   float64
	Speed    float64
	Settling bool
	Exempt   bool
	// Sprite is the asset key for graphical front ends
	Sprite string
}

// PreviewView is the orbiting preview
type PreviewView struct {
	Rank   int
	Pos    vmath.Vec2
	Radius float64
}

// Snapshot is an immutable copy of everything the presentation layer draws
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	Tier       int
	OrbitSpeed float64
	Warning    bool
	Preview    *PreviewView
	NextRank   int
	Upcoming   []int
	Balls      []BallView
	Arena      ArenaView
}

// ArenaView carries the fixed geometry needed to draw the bowl
type ArenaView struct {
	Center            vmath.Vec2
	Size              float64
	BowlRadius        float64
	OrbitRadius       float64
	WarningLineRadius float64
	WarningRadius     float64
	GameOverRadius    float64
}

// Snapshot copies session state; the result shares nothing with the session
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      s.phase,
		Score:      s.score,
		Tier:       s.tier,
		OrbitSpeed: s.orbit.Speed(),
		Warning:    s.warning,
		NextRank:   s.queue.PeekNext(),
		Upcoming:   s.queue.Upcoming(),
		Arena: ArenaView{
			Center:            s.cfg.Arena.Center(),
			Size:              s.cfg.Arena.Size,
			BowlRadius:        s.cfg.Arena.BowlRadius,
			OrbitRadius:       s.cfg.Arena.OrbitRadius,
			WarningLineRadius: s.cfg.Arena.WarningLineRadius,
			WarningRadius:     s.cfg.Boundary.WarningRadius,
			GameOverRadius:    s.cfg.Boundary.GameOverRadius,
		},
	}
	if s.preview != nil {
		snap.Preview = &PreviewView{
			Rank:   s.preview.Rank,
			Pos:    s.preview.Pos,
			Radius: s.preview.Radius,
		}
	}

	bodies := s.world.FreeBodies()
	snap.Balls = make([]BallView, 0, len(bodies))
	for _, b := range bodies {
		rec, ok := s.balls.Get(b.ID)
		if !ok {
			continue
		}
		snap.Balls = append(snap.Balls, BallView{
			ID:       b.ID,
			Rank:     rec.Rank,
			Pos:      b.Pos,
			Radius:   b.Radius,
			Speed:    b.Speed,
			Settling: rec.Settling,
			Exempt:   b.ID == s.lastLaunched,
			Sprite:   parameter.RankSpriteKey(rec.Rank),
		})
	}
	return snap
}
