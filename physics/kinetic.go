package physics

import (
	"github.com/lixenwraith/orbit-merge/vmath"
)

// kinetic is the integrator state of one circle
type kinetic struct {
	Pos, Vel vmath.Vec2
	// Force accumulates until the next integration
	Force      vmath.Vec2
	Angle      float64
	AngularVel float64
}

// Integrate performs one step: v = v*(1-air) + F/m*Δ²; p = p + v
func Integrate(k *kinetic, invMass, frictionAir, deltaSq float64) {
	drag := 1 - frictionAir
	k.Vel = vmath.V2Add(vmath.V2Scale(k.Vel, drag), vmath.V2Scale(k.Force, invMass*deltaSq))
	k.Pos = vmath.V2Add(k.Pos, k.Vel)
	k.Angle += k.AngularVel
	k.AngularVel *= drag
	k.Force = vmath.Vec2{}
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *kinetic, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}

// SetImpulse overrides velocity
func SetImpulse(k *kinetic, v vmath.Vec2) {
	k.Vel = v
}
