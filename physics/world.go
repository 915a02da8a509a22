// Package physics defines the rigid-body interface the game core drives, plus a built-in circle solver
package physics

import (
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// BodyID is a stable body handle; IDs are never reused within a world and 0 means none
type BodyID uint64

// Material holds per-body surface and drag parameters
type Material struct {
	Restitution float64 `toml:"restitution" env:"RESTITUTION"`
	Friction    float64 `toml:"friction" env:"FRICTION"`
	FrictionAir float64 `toml:"friction_air" env:"FRICTION_AIR"`
	Density     float64 `toml:"density" env:"DENSITY"`
}

// DefaultMaterial returns the standard ball material
func DefaultMaterial() Material {
	return Material{
		Restitution: parameter.BallRestitution,
		Friction:    parameter.BallFriction,
		FrictionAir: parameter.BallFrictionAir,
		Density:     parameter.BallDensity,
	}
}

// BodySpec describes a circle to create
type BodySpec struct {
	Pos      vmath.Vec2
	Radius   float64
	Material Material
}

// BodyState is a read-only copy of a body at the time of the query
type BodyState struct {
	ID         BodyID
	Pos        vmath.Vec2
	Vel        vmath.Vec2
	Speed      float64
	AngularVel float64
	Mass       float64
	Radius     float64
}

// Contact is a pair of bodies that started touching during a step
type Contact struct {
	A, B BodyID
}

// World is the black-box 2D simulator the core drives
// Velocities are in units per tick, forces are scaled by Δ² on integration
// Implementations are single-threaded
type World interface {
	CreateBody(spec BodySpec) BodyID
	RemoveBodies(ids ...BodyID)
	SetVelocity(id BodyID, v vmath.Vec2)
	SetAngularVelocity(id BodyID, w float64)
	// ApplyForce accumulates a force until the next Step
	ApplyForce(id BodyID, point, force vmath.Vec2)
	// ScaleBody rescales a circle; circles use sx, sy must match for a uniform scale
	ScaleBody(id BodyID, sx, sy float64)
	Body(id BodyID) (BodyState, bool)
	// FreeBodies returns all dynamic bodies in creation order
	FreeBodies() []BodyState
	// Step advances one tick of delta ms and returns contact starts in detection order
	Step(delta float64) []Contact
	// Clear removes every body
	Clear()
}
