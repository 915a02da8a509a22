package component

import (
	"github.com/lixenwraith/orbit-merge/physics"
)

// BallStore is a side table of Ball records keyed by body ID
// Records are pointers so systems update them in place
// Iteration follows insertion order
type BallStore struct {
	balls map[physics.BodyID]*Ball
	ids   []physics.BodyID
}

// NewBallStore creates an empty store
func NewBallStore() *BallStore {
	return &BallStore{
		balls: make(map[physics.BodyID]*Ball),
		ids:   make([]physics.BodyID, 0, 64),
	}
}

// Set inserts or replaces the record of id
func (s *BallStore) Set(id physics.BodyID, b Ball) *Ball {
	if _, exists := s.balls[id]; !exists {
		s.ids = append(s.ids, id)
	}
	rec := &b
	s.balls[id] = rec
	return rec
}

// Get returns the record of id
func (s *BallStore) Get(id physics.BodyID) (*Ball, bool) {
	b, ok := s.balls[id]
	return b, ok
}

// Has reports whether id has a record
func (s *BallStore) Has(id physics.BodyID) bool {
	_, ok := s.balls[id]
	return ok
}

// Remove deletes the record of id
func (s *BallStore) Remove(id physics.BodyID) {
	s.RemoveBatch([]physics.BodyID{id})
}

// RemoveBatch deletes multiple records in a single pass
func (s *BallStore) RemoveBatch(ids []physics.BodyID) {
	if len(ids) == 0 || len(s.balls) == 0 {
		return
	}

	removed := 0
	for _, id := range ids {
		if _, exists := s.balls[id]; exists {
			delete(s.balls, id)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	kept := s.ids[:0]
	for _, id := range s.ids {
		if _, alive := s.balls[id]; alive {
			kept = append(kept, id)
		}
	}
	s.ids = kept
}

// IDs returns a copy of all IDs in insertion order
func (s *BallStore) IDs() []physics.BodyID {
	out := make([]physics.BodyID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of records
func (s *BallStore) Len() int {
	return len(s.ids)
}

// Clear drops every record
func (s *BallStore) Clear() {
	clear(s.balls)
	s.ids = s.ids[:0]
}
