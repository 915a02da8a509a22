package system

import (
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// StabilizerSystem damps slow bodies and snaps near-still ones to rest
type StabilizerSystem struct {
	cfg StabilizerConfig
}

func NewStabilizerSystem(cfg StabilizerConfig) *StabilizerSystem {
	return &StabilizerSystem{cfg: cfg}
}

// Update returns the number of bodies brought to a full stop
func (s *StabilizerSystem) Update(w physics.World, bodies []physics.BodyState) int {
	stopped := 0
	for _, b := range bodies {
		if b.Speed >= s.cfg.SpeedThreshold {
			continue
		}
		if b.Speed == 0 && b.AngularVel == 0 {
			continue
		}

		if b.Speed < s.cfg.StopSpeed {
			w.SetVelocity(b.ID, vmath.Vec2{})
			w.SetAngularVelocity(b.ID, 0)
			stopped++
			continue
		}
		w.SetVelocity(b.ID, vmath.V2Scale(b.Vel, s.cfg.Damping))
	}
	return stopped
}
