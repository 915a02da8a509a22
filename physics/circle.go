package physics

import (
	"math"
	"slices"

	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// SolverConfig tunes the built-in circle solver
type SolverConfig struct {
	RestingThreshold float64 `toml:"resting_threshold" env:"RESTING_THRESHOLD"`
	Iterations       int     `toml:"iterations" env:"ITERATIONS"`
	Slop             float64 `toml:"slop" env:"SLOP"`
	Correction       float64 `toml:"correction" env:"CORRECTION"`
}

// DefaultSolverConfig returns the tuned solver defaults
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		RestingThreshold: parameter.PhysicsRestingThreshold,
		Iterations:       parameter.PhysicsIterations,
		Slop:             parameter.PhysicsSlop,
		Correction:       parameter.PhysicsCorrection,
	}
}

type body struct {
	id      BodyID
	k       kinetic
	radius  float64
	mass    float64
	invMass float64
	mat     Material
}

func (b *body) state() BodyState {
	return BodyState{
		ID:         b.id,
		Pos:        b.k.Pos,
		Vel:        b.k.Vel,
		Speed:      vmath.V2Mag(b.k.Vel),
		AngularVel: b.k.AngularVel,
		Mass:       b.mass,
		Radius:     b.radius,
	}
}

func (b *body) setRadius(r float64) {
	b.radius = r
	b.mass = circleMass(r, b.mat.Density)
	b.invMass = 1 / b.mass
}

// circleMass returns the mass of a disc, never zero
func circleMass(r, density float64) float64 {
	m := density * math.Pi * r * r
	if m <= 0 {
		return 1
	}
	return m
}

// CircleWorld is a small deterministic circle-only solver
// Iteration order is creation order, so identical inputs replay identically
type CircleWorld struct {
	cfg      SolverConfig
	bodies   map[BodyID]*body
	order    []*body
	nextID   BodyID
	contacts map[pairKey]struct{}
}

// NewCircleWorld creates an empty world
func NewCircleWorld(cfg SolverConfig) *CircleWorld {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	return &CircleWorld{
		cfg:      cfg,
		bodies:   make(map[BodyID]*body),
		contacts: make(map[pairKey]struct{}),
	}
}

func (w *CircleWorld) CreateBody(spec BodySpec) BodyID {
	w.nextID++
	b := &body{
		id:  w.nextID,
		k:   kinetic{Pos: spec.Pos},
		mat: spec.Material,
	}
	b.setRadius(spec.Radius)
	w.bodies[b.id] = b
	w.order = append(w.order, b)
	return b.id
}

func (w *CircleWorld) RemoveBodies(ids ...BodyID) {
	removed := false
	for _, id := range ids {
		if _, ok := w.bodies[id]; ok {
			delete(w.bodies, id)
			removed = true
		}
	}
	if !removed {
		return
	}

	w.order = slices.DeleteFunc(w.order, func(b *body) bool {
		_, alive := w.bodies[b.id]
		return !alive
	})
	for key := range w.contacts {
		_, okLo := w.bodies[key.lo]
		_, okHi := w.bodies[key.hi]
		if !okLo || !okHi {
			delete(w.contacts, key)
		}
	}
}

func (w *CircleWorld) SetVelocity(id BodyID, v vmath.Vec2) {
	if b, ok := w.bodies[id]; ok {
		SetImpulse(&b.k, v)
	}
}

func (w *CircleWorld) SetAngularVelocity(id BodyID, av float64) {
	if b, ok := w.bodies[id]; ok {
		b.k.AngularVel = av
	}
}

// ApplyForce accumulates force at the body center; point is accepted for interface parity, circles take no torque from it
func (w *CircleWorld) ApplyForce(id BodyID, point, force vmath.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.k.Force = vmath.V2Add(b.k.Force, force)
	}
}

func (w *CircleWorld) ScaleBody(id BodyID, sx, sy float64) {
	b, ok := w.bodies[id]
	if !ok || sx <= 0 {
		return
	}
	b.setRadius(b.radius * sx)
}

func (w *CircleWorld) Body(id BodyID) (BodyState, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	return b.state(), true
}

func (w *CircleWorld) FreeBodies() []BodyState {
	out := make([]BodyState, 0, len(w.order))
	for _, b := range w.order {
		out = append(out, b.state())
	}
	return out
}

// Len returns the number of live bodies
func (w *CircleWorld) Len() int {
	return len(w.order)
}

func (w *CircleWorld) Step(delta float64) []Contact {
	deltaSq := delta * delta
	for _, b := range w.order {
		Integrate(&b.k, b.invMass, b.mat.FrictionAir, deltaSq)
	}

	// Narrow phase over all pairs; ball counts stay small enough for O(n²)
	type touch struct {
		a, b   *body
		normal vmath.Vec2
	}
	var touching []touch
	current := make(map[pairKey]struct{}, len(w.contacts))
	var started []Contact

	for i := 0; i < len(w.order); i++ {
		for j := i + 1; j < len(w.order); j++ {
			a, b := w.order[i], w.order[j]
			n, _, ok := overlap(a, b)
			if !ok {
				continue
			}
			key := makePairKey(a.id, b.id)
			current[key] = struct{}{}
			if _, seen := w.contacts[key]; !seen {
				started = append(started, Contact{A: a.id, B: b.id})
			}
			touching = append(touching, touch{a: a, b: b, normal: n})
		}
	}
	w.contacts = current

	for _, t := range touching {
		resolveVelocity(t.a, t.b, t.normal, w.cfg.RestingThreshold)
	}

	for iter := 0; iter < w.cfg.Iterations; iter++ {
		for _, t := range touching {
			n, depth, ok := overlap(t.a, t.b)
			if !ok {
				continue
			}
			correctPosition(t.a, t.b, n, depth, w.cfg.Slop, w.cfg.Correction)
		}
	}

	return started
}

func (w *CircleWorld) Clear() {
	clear(w.bodies)
	clear(w.contacts)
	w.order = w.order[:0]
}

var _ World = (*CircleWorld)(nil)
