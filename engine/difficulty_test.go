package engine

import (
	"testing"

	"github.com/lixenwraith/orbit-merge/vmath"
)

func TestDifficultyTier(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{1999, 1},
		{2000, 2},
		{4500, 4},
		{5000, 5},
		{100000, 5},
	}
	for _, tt := range tests {
		if got := DifficultyTier(tt.score, cfg); got != tt.want {
			t.Errorf("Score %d: expected tier %d, got %d", tt.score, tt.want, got)
		}
	}
}

// TestDifficultyTierReplay verifies monotonic tiers and identical replays
func TestDifficultyTierReplay(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	rng := vmath.NewFastRand(11)

	var scores []int
	score := 0
	for i := 0; i < 2000; i++ {
		score += (rng.Intn(11) + 1) * 10
		scores = append(scores, score)
	}

	var first []int
	prev := 0
	for _, s := range scores {
		tier := DifficultyTier(s, cfg)
		if tier < prev {
			t.Fatalf("Expected non-decreasing tier, got %d after %d", tier, prev)
		}
		prev = tier
		first = append(first, tier)
	}
	for i, s := range scores {
		if got := DifficultyTier(s, cfg); got != first[i] {
			t.Fatalf("Replay %d: expected %d, got %d", i, first[i], got)
		}
	}
}

func TestOrbitSpeed(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	if got := OrbitSpeed(0, cfg); got != 0.02 {
		t.Errorf("Expected base speed 0.02, got %f", got)
	}
	if got := OrbitSpeed(5, cfg); !vmath.ApproxEqual(got, 0.04, 1e-12) {
		t.Errorf("Expected 0.04 at tier 5, got %f", got)
	}
}
