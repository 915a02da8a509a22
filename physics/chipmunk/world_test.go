package chipmunk

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

var inert = physics.Material{Density: 0.001}

func TestCreateAndQuery(t *testing.T) {
	w := NewWorld()
	a := w.CreateBody(physics.BodySpec{Pos: vmath.V2(10, 20), Radius: 5, Material: inert})
	b := w.CreateBody(physics.BodySpec{Pos: vmath.V2(100, 20), Radius: 5, Material: inert})
	if a != 1 || b != 2 {
		t.Fatalf("Expected IDs 1 and 2, got %d and %d", a, b)
	}

	st, ok := w.Body(a)
	if !ok {
		t.Fatal("Expected body to exist")
	}
	if st.Pos != vmath.V2(10, 20) || st.Radius != 5 {
		t.Errorf("Expected (10,20) radius 5, got %v radius %f", st.Pos, st.Radius)
	}
	want := 0.001 * math.Pi * 25
	if !vmath.ApproxEqual(st.Mass, want, 1e-12) {
		t.Errorf("Expected mass %f, got %f", want, st.Mass)
	}
	if got := w.FreeBodies(); len(got) != 2 || got[0].ID != a || got[1].ID != b {
		t.Errorf("Expected bodies in creation order, got %+v", got)
	}
}

func TestVelocityIntegration(t *testing.T) {
	w := NewWorld()
	id := w.CreateBody(physics.BodySpec{Pos: vmath.V2(0, 0), Radius: 5, Material: inert})
	w.SetVelocity(id, vmath.V2(2, 0))
	w.Step(16)

	st, _ := w.Body(id)
	if !vmath.ApproxEqual(st.Pos.X, 2, 1e-9) {
		t.Errorf("Expected x=2 after one tick, got %f", st.Pos.X)
	}
}

func TestForceScaling(t *testing.T) {
	w := NewWorld()
	id := w.CreateBody(physics.BodySpec{Pos: vmath.V2(0, 0), Radius: 5, Material: inert})
	st, _ := w.Body(id)

	w.ApplyForce(id, st.Pos, vmath.V2(st.Mass*0.001, 0))
	w.Step(10)

	st, _ = w.Body(id)
	if !vmath.ApproxEqual(st.Vel.X, 0.1, 1e-9) {
		t.Errorf("Expected velocity 0.1 from F/m*Δ², got %f", st.Vel.X)
	}
}

func TestContactStart(t *testing.T) {
	w := NewWorld()
	a := w.CreateBody(physics.BodySpec{Pos: vmath.V2(0, 0), Radius: 5, Material: inert})
	b := w.CreateBody(physics.BodySpec{Pos: vmath.V2(20, 0), Radius: 5, Material: inert})
	w.SetVelocity(a, vmath.V2(1, 0))
	w.SetVelocity(b, vmath.V2(-1, 0))

	var first *physics.Contact
	for i := 0; i < 20 && first == nil; i++ {
		if cs := w.Step(1); len(cs) > 0 {
			first = &cs[0]
		}
	}
	if first == nil {
		t.Fatal("Expected a contact start")
	}
	if !(first.A == a && first.B == b) && !(first.A == b && first.B == a) {
		t.Errorf("Expected pair (%d,%d), got %+v", a, b, *first)
	}
}

func TestScaleKeepsContact(t *testing.T) {
	w := NewWorld()
	a := w.CreateBody(physics.BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: inert})
	w.CreateBody(physics.BodySpec{Pos: vmath.V2(18, 0), Radius: 10, Material: inert})

	starts := 0
	for i := 0; i < 6; i++ {
		w.ScaleBody(a, 0.999, 0.999)
		starts += len(w.Step(1))
	}
	if starts != 1 {
		t.Errorf("Expected 1 contact start for a persistent contact, got %d", starts)
	}
}

func TestScaleRemoveClear(t *testing.T) {
	w := NewWorld()
	a := w.CreateBody(physics.BodySpec{Pos: vmath.V2(0, 0), Radius: 10, Material: inert})
	b := w.CreateBody(physics.BodySpec{Pos: vmath.V2(50, 0), Radius: 10, Material: inert})

	w.ScaleBody(a, 1.5, 1.5)
	st, _ := w.Body(a)
	if !vmath.ApproxEqual(st.Radius, 15, 1e-12) {
		t.Errorf("Expected radius 15, got %f", st.Radius)
	}
	if !vmath.ApproxEqual(st.Mass, 0.001*math.Pi*225, 1e-12) {
		t.Errorf("Expected mass rescaled, got %f", st.Mass)
	}

	w.RemoveBodies(a, 999)
	if _, ok := w.Body(a); ok || w.Len() != 1 {
		t.Errorf("Expected only body %d to remain, len=%d", b, w.Len())
	}

	w.Clear()
	if w.Len() != 0 {
		t.Errorf("Expected empty world, got %d", w.Len())
	}
	if id := w.CreateBody(physics.BodySpec{Radius: 1, Material: inert}); id != 3 {
		t.Errorf("Expected IDs not reused, got %d", id)
	}
}
