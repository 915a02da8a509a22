package engine

import (
	"github.com/lixenwraith/orbit-merge/parameter"
)

// DifficultyConfig maps score to tier and tier to orbit speed
type DifficultyConfig struct {
	ScoreFloor     int     `toml:"score_floor" env:"SCORE_FLOOR"`
	ScoreStep      int     `toml:"score_step" env:"SCORE_STEP"`
	MaxTier        int     `toml:"max_tier" env:"MAX_TIER"`
	BaseOrbitSpeed float64 `toml:"base_orbit_speed" env:"BASE_ORBIT_SPEED"`
	OrbitSpeedStep float64 `toml:"orbit_speed_step" env:"ORBIT_SPEED_STEP"`
}

func DefaultDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		ScoreFloor:     parameter.DifficultyScoreFloor,
		ScoreStep:      parameter.DifficultyScoreStep,
		MaxTier:        parameter.DifficultyMaxTier,
		BaseOrbitSpeed: parameter.BaseOrbitSpeed,
		OrbitSpeedStep: parameter.OrbitSpeedStep,
	}
}

// DifficultyTier derives the tier from cumulative score
// Tier 0 below the floor, then one tier per step, capped at MaxTier
func DifficultyTier(score int, cfg DifficultyConfig) int {
	if score < cfg.ScoreFloor {
		return 0
	}
	tier := 1
	if cfg.ScoreStep > 0 {
		tier += (score - cfg.ScoreFloor) / cfg.ScoreStep
	}
	if tier > cfg.MaxTier {
		tier = cfg.MaxTier
	}
	return tier
}

// OrbitSpeed returns the preview angular speed in rad/tick for a tier
func OrbitSpeed(tier int, cfg DifficultyConfig) float64 {
	return cfg.BaseOrbitSpeed + float64(tier)*cfg.OrbitSpeedStep
}
