package system

import (
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// GravitySystem pulls every free body toward the bowl center
// Far bodies get the strong coefficient, near bodies the weak one, the dead zone none
type GravitySystem struct {
	cfg    GravityConfig
	center vmath.Vec2
}

func NewGravitySystem(cfg GravityConfig, center vmath.Vec2) *GravitySystem {
	return &GravitySystem{cfg: cfg, center: center}
}

// Coefficient returns the pull per unit mass at the given distance from center
func (g *GravitySystem) Coefficient(distance float64) float64 {
	switch {
	case distance <= g.cfg.DeadZone:
		return 0
	case distance <= g.cfg.NearRadius:
		return g.cfg.NearCoefficient
	default:
		return g.cfg.FarCoefficient
	}
}

// Force returns the pull on a body and whether it is non-zero
func (g *GravitySystem) Force(b physics.BodyState) (vmath.Vec2, bool) {
	dir, dist := vmath.V2Toward(b.Pos, g.center)
	k := g.Coefficient(dist)
	if k == 0 {
		return vmath.Vec2{}, false
	}
	return vmath.V2Scale(dir, k*b.Mass), true
}

// Update applies the pull to each body, returns the number of bodies affected
func (g *GravitySystem) Update(w physics.World, bodies []physics.BodyState) int {
	applied := 0
	for _, b := range bodies {
		f, ok := g.Force(b)
		if !ok {
			continue
		}
		w.ApplyForce(b.ID, b.Pos, f)
		applied++
	}
	return applied
}
