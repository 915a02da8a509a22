package physics

import (
	"math"

	"github.com/lixenwraith/orbit-merge/vmath"
)

// pairKey orders two IDs so a pair has one map key regardless of detection order
type pairKey struct {
	lo, hi BodyID
}

func makePairKey(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// overlap returns the contact normal from a to b and the penetration depth
// Coincident centers resolve along +X
func overlap(a, b *body) (normal vmath.Vec2, depth float64, touching bool) {
	d := vmath.V2Sub(b.k.Pos, a.k.Pos)
	distSq := vmath.V2MagSq(d)
	reach := a.radius + b.radius
	if distSq >= reach*reach {
		return vmath.Vec2{}, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		return vmath.Vec2{X: 1}, reach, true
	}
	return vmath.V2Scale(d, 1/dist), reach - dist, true
}

// resolveVelocity applies the normal impulse with restitution and a clamped friction impulse
func resolveVelocity(a, b *body, n vmath.Vec2, restingThreshold float64) {
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	rel := vmath.V2Sub(b.k.Vel, a.k.Vel)
	vn := vmath.V2Dot(rel, n)
	if vn >= 0 {
		// Separating
		return
	}

	e := math.Max(a.mat.Restitution, b.mat.Restitution)
	if -vn < restingThreshold {
		e = 0
	}

	j := -(1 + e) * vn / invSum
	ApplyImpulse(&a.k, vmath.V2Scale(n, -j*a.invMass))
	ApplyImpulse(&b.k, vmath.V2Scale(n, j*b.invMass))

	// Tangential friction, Coulomb clamp against the normal impulse
	rel = vmath.V2Sub(b.k.Vel, a.k.Vel)
	tangent := vmath.V2Sub(rel, vmath.V2Scale(n, vmath.V2Dot(rel, n)))
	if vmath.V2MagSq(tangent) < vmath.Epsilon {
		return
	}
	tangent = vmath.V2Normalize(tangent)
	jt := -vmath.V2Dot(rel, tangent) / invSum
	mu := math.Sqrt(a.mat.Friction * b.mat.Friction)
	jt = vmath.Clamp(jt, -mu*j, mu*j)
	ApplyImpulse(&a.k, vmath.V2Scale(tangent, -jt*a.invMass))
	ApplyImpulse(&b.k, vmath.V2Scale(tangent, jt*b.invMass))
}

// correctPosition pushes overlapping bodies apart proportional to inverse mass
func correctPosition(a, b *body, n vmath.Vec2, depth, slop, share float64) {
	invSum := a.invMass + b.invMass
	if invSum == 0 || depth <= slop {
		return
	}
	corr := (depth - slop) * share / invSum
	a.k.Pos = vmath.V2Sub(a.k.Pos, vmath.V2Scale(n, corr*a.invMass))
	b.k.Pos = vmath.V2Add(b.k.Pos, vmath.V2Scale(n, corr*b.invMass))
}
