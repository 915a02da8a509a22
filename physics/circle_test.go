package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbit-merge/vmath"
)

// inert has no drag, bounce or friction so motion is easy to predict
var inert = Material{Density: 0.001}

func newTestWorld() *CircleWorld {
	return NewCircleWorld(DefaultSolverConfig())
}

// TestCreateAndQuery verifies IDs, ordering and read-back
func TestCreateAndQuery(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(BodySpec{Pos: vmath.V2(1, 2), Radius: 10, Material: inert})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(50, 0), Radius: 5, Material: inert})

	if a != 1 || b != 2 {
		t.Fatalf("Expected IDs 1 and 2, got %d and %d", a, b)
	}

	st, ok := w.Body(a)
	if !ok {
		t.Fatal("Expected body to exist")
	}
	if st.Pos != vmath.V2(1, 2) || st.Radius != 10 {
		t.Errorf("Expected pos (1,2) radius 10, got %v radius %f", st.Pos, st.Radius)
	}
	wantMass := 0.001 * math.Pi * 100
	if !vmath.ApproxEqual(st.Mass, wantMass, 1e-12) {
		t.Errorf("Expected mass %f, got %f", wantMass, st.Mass)
	}

	all := w.FreeBodies()
	if len(all) != 2 || all[0].ID != a || all[1].ID != b {
		t.Errorf("Expected bodies in creation order, got %+v", all)
	}
}

// TestIDsNotReusedAfterClear verifies stale handles never alias new bodies
func TestIDsNotReusedAfterClear(t *testing.T) {
	w := newTestWorld()
	first := w.CreateBody(BodySpec{Radius: 5, Material: inert})
	w.Clear()

	if w.Len() != 0 {
		t.Fatalf("Expected empty world after Clear, got %d", w.Len())
	}
	if _, ok := w.Body(first); ok {
		t.Error("Expected cleared body to be gone")
	}

	second := w.CreateBody(BodySpec{Radius: 5, Material: inert})
	if second == first {
		t.Errorf("Expected new ID after Clear, got reused %d", second)
	}
}

// TestIntegrateVelocity verifies position advances by velocity each tick
func TestIntegrateVelocity(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(BodySpec{Radius: 5, Material: inert})
	w.SetVelocity(id, vmath.V2(2, -1))

	w.Step(16)
	w.Step(16)

	st, _ := w.Body(id)
	if !vmath.ApproxEqual(st.Pos.X, 4, 1e-12) || !vmath.ApproxEqual(st.Pos.Y, -2, 1e-12) {
		t.Errorf("Expected (4, -2), got %v", st.Pos)
	}
	if !vmath.ApproxEqual(st.Speed, math.Sqrt(5), 1e-12) {
		t.Errorf("Expected speed %f, got %f", math.Sqrt(5), st.Speed)
	}
}

// TestAirFriction verifies drag is applied per tick
func TestAirFriction(t *testing.T) {
	w := newTestWorld()
	mat := inert
	mat.FrictionAir = 0.5
	id := w.CreateBody(BodySpec{Radius: 5, Material: mat})
	w.SetVelocity(id, vmath.V2(4, 0))
	w.SetAngularVelocity(id, 2)

	w.Step(16)

	st, _ := w.Body(id)
	if st.Vel.X != 2 {
		t.Errorf("Expected vel 2 after drag, got %f", st.Vel.X)
	}
	if st.AngularVel != 1 {
		t.Errorf("Expected angular vel 1 after drag, got %f", st.AngularVel)
	}
}

// TestApplyForceScaledByDeltaSquared verifies v += F/m*Δ² and that force is consumed
func TestApplyForceScaledByDeltaSquared(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(BodySpec{Radius: 10, Material: inert})
	st, _ := w.Body(id)

	force := vmath.V2(0.0005*st.Mass, 0)
	w.ApplyForce(id, st.Pos, force)
	w.Step(10)

	st, _ = w.Body(id)
	want := 0.0005 * 100
	if !vmath.ApproxEqual(st.Vel.X, want, 1e-12) {
		t.Errorf("Expected vel %f, got %f", want, st.Vel.X)
	}

	// No force applied this time, velocity must hold
	w.Step(10)
	st, _ = w.Body(id)
	if !vmath.ApproxEqual(st.Vel.X, want, 1e-12) {
		t.Errorf("Expected force to clear after step, vel %f", st.Vel.X)
	}
}

// TestContactStartReportedOnce verifies a persistent contact is reported only when it begins
func TestContactStartReportedOnce(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: inert})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(30, 0), Radius: 10, Material: inert})
	w.SetVelocity(a, vmath.V2(5, 0))

	var contacts []Contact
	for i := 0; i < 6; i++ {
		contacts = append(contacts, w.Step(16)...)
	}

	if len(contacts) != 1 {
		t.Fatalf("Expected exactly 1 contact start, got %d", len(contacts))
	}
	if contacts[0] != (Contact{A: a, B: b}) {
		t.Errorf("Expected contact (%d,%d), got %+v", a, b, contacts[0])
	}
}

// TestInelasticHeadOn verifies equal masses share momentum with zero restitution
func TestInelasticHeadOn(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: inert})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(30, 0), Radius: 10, Material: inert})
	w.SetVelocity(a, vmath.V2(5, 0))

	for i := 0; i < 3; i++ {
		w.Step(16)
	}

	sa, _ := w.Body(a)
	sb, _ := w.Body(b)
	if !vmath.ApproxEqual(sa.Vel.X, 2.5, 1e-9) || !vmath.ApproxEqual(sb.Vel.X, 2.5, 1e-9) {
		t.Errorf("Expected both at 2.5, got %f and %f", sa.Vel.X, sb.Vel.X)
	}

	// Penetration corrected down to about the slop
	if d := vmath.V2Dist(sa.Pos, sb.Pos); d < 19.8 {
		t.Errorf("Expected bodies pushed apart, distance %f", d)
	}
}

// TestElasticBounce verifies restitution above the resting threshold
func TestElasticBounce(t *testing.T) {
	w := newTestWorld()
	bouncy := inert
	bouncy.Restitution = 1
	a := w.CreateBody(BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: bouncy})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(30, 0), Radius: 10, Material: bouncy})
	w.SetVelocity(a, vmath.V2(5, 0))

	for i := 0; i < 3; i++ {
		w.Step(16)
	}

	sa, _ := w.Body(a)
	sb, _ := w.Body(b)
	if !vmath.ApproxEqual(sa.Vel.X, 0, 1e-9) || !vmath.ApproxEqual(sb.Vel.X, 5, 1e-9) {
		t.Errorf("Expected velocity exchange (0, 5), got (%f, %f)", sa.Vel.X, sb.Vel.X)
	}
}

// TestRestingContactDoesNotBounce verifies slow contacts are treated as resting
func TestRestingContactDoesNotBounce(t *testing.T) {
	w := newTestWorld()
	bouncy := inert
	bouncy.Restitution = 1
	a := w.CreateBody(BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: bouncy})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(20.5, 0), Radius: 10, Material: bouncy})
	w.SetVelocity(a, vmath.V2(0.8, 0))

	w.Step(16)

	sa, _ := w.Body(a)
	sb, _ := w.Body(b)
	if !vmath.ApproxEqual(sa.Vel.X, 0.4, 1e-9) || !vmath.ApproxEqual(sb.Vel.X, 0.4, 1e-9) {
		t.Errorf("Expected shared velocity 0.4, got (%f, %f)", sa.Vel.X, sb.Vel.X)
	}
}

// TestRemoveBodies verifies removal, order compaction and contact cleanup
func TestRemoveBodies(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: inert})
	b := w.CreateBody(BodySpec{Pos: vmath.V2(15, 0), Radius: 10, Material: inert})
	c := w.CreateBody(BodySpec{Pos: vmath.V2(100, 0), Radius: 10, Material: inert})

	if got := len(w.Step(16)); got != 1 {
		t.Fatalf("Expected 1 contact, got %d", got)
	}

	w.RemoveBodies(a, 999)

	all := w.FreeBodies()
	if len(all) != 2 || all[0].ID != b || all[1].ID != c {
		t.Errorf("Expected [b c], got %+v", all)
	}
	if len(w.contacts) != 0 {
		t.Errorf("Expected contacts involving removed body to be dropped, got %d", len(w.contacts))
	}

	// Removing unknown IDs is a no-op
	w.RemoveBodies(12345)
	if w.Len() != 2 {
		t.Errorf("Expected 2 bodies, got %d", w.Len())
	}
}

// TestScaleBody verifies radius and mass follow scale
func TestScaleBody(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(BodySpec{Radius: 10, Material: inert})
	before, _ := w.Body(id)

	w.ScaleBody(id, 1.2, 1.2)
	after, _ := w.Body(id)

	if !vmath.ApproxEqual(after.Radius, 12, 1e-12) {
		t.Errorf("Expected radius 12, got %f", after.Radius)
	}
	if !vmath.ApproxEqual(after.Mass, before.Mass*1.44, 1e-12) {
		t.Errorf("Expected mass scaled by area, got %f", after.Mass)
	}

	// Non-positive scale ignored
	w.ScaleBody(id, 0, 0)
	after, _ = w.Body(id)
	if !vmath.ApproxEqual(after.Radius, 12, 1e-12) {
		t.Errorf("Expected radius unchanged on zero scale, got %f", after.Radius)
	}
}

// TestOperationsOnMissingBody verifies unknown handles are ignored
func TestOperationsOnMissingBody(t *testing.T) {
	w := newTestWorld()
	w.SetVelocity(7, vmath.V2(1, 1))
	w.SetAngularVelocity(7, 1)
	w.ApplyForce(7, vmath.Vec2{}, vmath.V2(1, 1))
	w.ScaleBody(7, 2, 2)

	if _, ok := w.Body(7); ok {
		t.Error("Expected missing body lookup to fail")
	}
}
