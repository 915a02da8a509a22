// Package chipmunk adapts a Chipmunk2D space to the physics.World interface
package chipmunk

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

const ballCollisionType cp.CollisionType = 1

type entry struct {
	id     physics.BodyID
	body   *cp.Body
	shape  *cp.Shape
	radius float64
	mat    physics.Material
	force  vmath.Vec2
}

// World runs one Chipmunk step per tick with dt = 1, so velocities stay in units per tick
// Forces are buffered and scaled by delta² at Step to match the circle solver
type World struct {
	space    *cp.Space
	entries  map[physics.BodyID]*entry
	order    []*entry
	nextID   physics.BodyID
	contacts []physics.Contact
}

func NewWorld() *World {
	w := &World{
		space:   cp.NewSpace(),
		entries: make(map[physics.BodyID]*entry),
	}
	handler := w.space.NewCollisionHandler(ballCollisionType, ballCollisionType)
	handler.BeginFunc = w.begin
	return w
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ida, okA := a.UserData.(physics.BodyID)
	idb, okB := b.UserData.(physics.BodyID)
	if okA && okB {
		w.contacts = append(w.contacts, physics.Contact{A: ida, B: idb})
	}
	return true
}

func circleMass(r, density float64) float64 {
	m := density * math.Pi * r * r
	if m <= 0 {
		return 1
	}
	return m
}

func (w *World) newShape(e *entry) *cp.Shape {
	shape := cp.NewCircle(e.body, e.radius, cp.Vector{})
	shape.SetElasticity(e.mat.Restitution)
	shape.SetFriction(e.mat.Friction)
	shape.SetCollisionType(ballCollisionType)
	return w.space.AddShape(shape)
}

func (w *World) CreateBody(spec physics.BodySpec) physics.BodyID {
	w.nextID++
	mass := circleMass(spec.Radius, spec.Material.Density)
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: spec.Pos.X, Y: spec.Pos.Y})
	body.UserData = w.nextID
	w.space.AddBody(body)

	e := &entry{
		id:     w.nextID,
		body:   body,
		radius: spec.Radius,
		mat:    spec.Material,
	}
	e.shape = w.newShape(e)
	w.entries[e.id] = e
	w.order = append(w.order, e)
	return e.id
}

func (w *World) remove(e *entry) {
	w.space.RemoveShape(e.shape)
	w.space.RemoveBody(e.body)
	delete(w.entries, e.id)
}

func (w *World) RemoveBodies(ids ...physics.BodyID) {
	removed := false
	for _, id := range ids {
		if e, ok := w.entries[id]; ok {
			w.remove(e)
			removed = true
		}
	}
	if removed {
		w.order = slices.DeleteFunc(w.order, func(e *entry) bool {
			_, alive := w.entries[e.id]
			return !alive
		})
	}
}

func (w *World) SetVelocity(id physics.BodyID, v vmath.Vec2) {
	if e, ok := w.entries[id]; ok {
		e.body.SetVelocity(v.X, v.Y)
	}
}

func (w *World) SetAngularVelocity(id physics.BodyID, av float64) {
	if e, ok := w.entries[id]; ok {
		e.body.SetAngularVelocity(av)
	}
}

// ApplyForce buffers force until the next Step; point is ignored as the pull always targets the centroid
func (w *World) ApplyForce(id physics.BodyID, point, force vmath.Vec2) {
	if e, ok := w.entries[id]; ok {
		e.force = vmath.V2Add(e.force, force)
	}
}

// ScaleBody resizes the circle shape in place and rescales mass
// The shape is kept so the space's arbiters survive and a touching pair does not report a new contact start
func (w *World) ScaleBody(id physics.BodyID, sx, sy float64) {
	e, ok := w.entries[id]
	if !ok || sx <= 0 {
		return
	}
	circle, ok := e.shape.Class.(*cp.Circle)
	if !ok {
		return
	}
	e.radius *= sx
	circle.SetRadius(e.radius)
	mass := circleMass(e.radius, e.mat.Density)
	e.body.SetMass(mass)
	e.body.SetMoment(cp.MomentForCircle(mass, 0, e.radius, cp.Vector{}))
}

func (w *World) state(e *entry) physics.BodyState {
	p := e.body.Position()
	v := e.body.Velocity()
	vel := vmath.V2(v.X, v.Y)
	return physics.BodyState{
		ID:         e.id,
		Pos:        vmath.V2(p.X, p.Y),
		Vel:        vel,
		Speed:      vmath.V2Mag(vel),
		AngularVel: e.body.AngularVelocity(),
		Mass:       e.body.Mass(),
		Radius:     e.radius,
	}
}

func (w *World) Body(id physics.BodyID) (physics.BodyState, bool) {
	e, ok := w.entries[id]
	if !ok {
		return physics.BodyState{}, false
	}
	return w.state(e), true
}

func (w *World) FreeBodies() []physics.BodyState {
	out := make([]physics.BodyState, 0, len(w.order))
	for _, e := range w.order {
		out = append(out, w.state(e))
	}
	return out
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return len(w.order)
}

func (w *World) Step(delta float64) []physics.Contact {
	deltaSq := delta * delta
	for _, e := range w.order {
		if drag := 1 - e.mat.FrictionAir; drag != 1 {
			v := e.body.Velocity()
			e.body.SetVelocity(v.X*drag, v.Y*drag)
			e.body.SetAngularVelocity(e.body.AngularVelocity() * drag)
		}
		if e.force != (vmath.Vec2{}) {
			f := vmath.V2Scale(e.force, deltaSq)
			e.body.ApplyForceAtWorldPoint(cp.Vector{X: f.X, Y: f.Y}, e.body.Position())
			e.force = vmath.Vec2{}
		}
	}

	w.contacts = w.contacts[:0]
	w.space.Step(1)

	if len(w.contacts) == 0 {
		return nil
	}
	out := make([]physics.Contact, len(w.contacts))
	copy(out, w.contacts)
	return out
}

func (w *World) Clear() {
	for _, e := range w.order {
		w.remove(e)
	}
	w.order = w.order[:0]
	w.contacts = w.contacts[:0]
}

var _ physics.World = (*World)(nil)
