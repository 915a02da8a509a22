package component

import (
	"testing"

	"github.com/lixenwraith/orbit-merge/physics"
)

func TestBallStoreSetGet(t *testing.T) {
	s := NewBallStore()
	rec := s.Set(3, Ball{Rank: 2})

	got, ok := s.Get(3)
	if !ok {
		t.Fatal("Expected record to exist")
	}
	if got != rec || got.Rank != 2 {
		t.Errorf("Expected same record with rank 2, got %+v", got)
	}

	// Mutation through the pointer is visible
	rec.Consumed = true
	got, _ = s.Get(3)
	if !got.Consumed {
		t.Error("Expected in-place update to be visible")
	}

	// Replacing keeps a single ID entry
	s.Set(3, Ball{Rank: 4})
	if s.Len() != 1 {
		t.Errorf("Expected 1 record after replace, got %d", s.Len())
	}
}

func TestBallStoreRemoveBatchKeepsOrder(t *testing.T) {
	s := NewBallStore()
	for id := physics.BodyID(1); id <= 5; id++ {
		s.Set(id, Ball{Rank: int(id)})
	}

	s.RemoveBatch([]physics.BodyID{2, 4, 99})

	ids := s.IDs()
	want := []physics.BodyID{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, ids)
			break
		}
	}
	if s.Has(2) || s.Has(4) {
		t.Error("Expected removed records to be gone")
	}
}

func TestBallStoreClear(t *testing.T) {
	s := NewBallStore()
	s.Set(1, Ball{})
	s.Set(2, Ball{})
	s.Remove(1)
	if s.Len() != 1 {
		t.Errorf("Expected 1 record, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 || s.Has(2) {
		t.Error("Expected empty store after Clear")
	}
}
