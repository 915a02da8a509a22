// Package system holds the per-tick game systems driven by the session
package system

import (
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// ArenaConfig places the bowl in world space
type ArenaConfig struct {
	CenterX           float64 `toml:"center_x" env:"CENTER_X"`
	CenterY           float64 `toml:"center_y" env:"CENTER_Y"`
	Size              float64 `toml:"size" env:"SIZE"`
	BowlRadius        float64 `toml:"bowl_radius" env:"BOWL_RADIUS"`
	OrbitRadius       float64 `toml:"orbit_radius" env:"ORBIT_RADIUS"`
	WarningLineRadius float64 `toml:"warning_line_radius" env:"WARNING_LINE_RADIUS"`
}

// Center returns the bowl center
func (a ArenaConfig) Center() vmath.Vec2 {
	return vmath.V2(a.CenterX, a.CenterY)
}

func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		CenterX:           parameter.ArenaCenterX,
		CenterY:           parameter.ArenaCenterY,
		Size:              parameter.ArenaSize,
		BowlRadius:        parameter.BowlRadius,
		OrbitRadius:       parameter.OrbitRadius,
		WarningLineRadius: parameter.WarningLineRadius,
	}
}

// GravityConfig is the two-tier central pull
type GravityConfig struct {
	DeadZone        float64 `toml:"dead_zone" env:"DEAD_ZONE"`
	NearRadius      float64 `toml:"near_radius" env:"NEAR_RADIUS"`
	FarCoefficient  float64 `toml:"far_coefficient" env:"FAR_COEFFICIENT"`
	NearCoefficient float64 `toml:"near_coefficient" env:"NEAR_COEFFICIENT"`
}

func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		DeadZone:        parameter.GravityDeadZone,
		NearRadius:      parameter.GravityNearRadius,
		FarCoefficient:  parameter.GravityFarCoefficient,
		NearCoefficient: parameter.GravityNearCoefficient,
	}
}

// StabilizerConfig settles slow bodies
type StabilizerConfig struct {
	SpeedThreshold float64 `toml:"speed_threshold" env:"SPEED_THRESHOLD"`
	Damping        float64 `toml:"damping" env:"DAMPING"`
	StopSpeed      float64 `toml:"stop_speed" env:"STOP_SPEED"`
}

func DefaultStabilizerConfig() StabilizerConfig {
	return StabilizerConfig{
		SpeedThreshold: parameter.StabilizeSpeedThreshold,
		Damping:        parameter.StabilizeDamping,
		StopSpeed:      parameter.StabilizeStopSpeed,
	}
}

// BoundaryConfig holds the two concentric thresholds and their speed gates
type BoundaryConfig struct {
	WarningRadius     float64 `toml:"warning_radius" env:"WARNING_RADIUS"`
	GameOverRadius    float64 `toml:"game_over_radius" env:"GAME_OVER_RADIUS"`
	WarningSpeedGate  float64 `toml:"warning_speed_gate" env:"WARNING_SPEED_GATE"`
	GameOverSpeedGate float64 `toml:"game_over_speed_gate" env:"GAME_OVER_SPEED_GATE"`
}

func DefaultBoundaryConfig() BoundaryConfig {
	return BoundaryConfig{
		WarningRadius:     parameter.WarningRadius,
		GameOverRadius:    parameter.GameOverRadius,
		WarningSpeedGate:  parameter.WarningSpeedGate,
		GameOverSpeedGate: parameter.GameOverSpeedGate,
	}
}

// QueueConfig sizes the launch queue and its rank range
type QueueConfig struct {
	Lookahead    int `toml:"lookahead" env:"LOOKAHEAD"`
	SpawnMaxRank int `toml:"spawn_max_rank" env:"SPAWN_MAX_RANK"`
}

func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		Lookahead:    parameter.QueueLookahead,
		SpawnMaxRank: parameter.SpawnMaxRank,
	}
}

// MergeConfig shapes merges and the settle animation
type MergeConfig struct {
	ScoreUnit     int              `toml:"score_unit" env:"SCORE_UNIT"`
	SpawnScale    float64          `toml:"spawn_scale" env:"SPAWN_SCALE"`
	ShrinkFactor  float64          `toml:"shrink_factor" env:"SHRINK_FACTOR"`
	SettleEpsilon float64          `toml:"settle_epsilon" env:"SETTLE_EPSILON"`
	Impulse       float64          `toml:"impulse" env:"IMPULSE"`
	Material      physics.Material `toml:"material" envPrefix:"MATERIAL_"`
}

func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		ScoreUnit:     parameter.ScoreUnit,
		SpawnScale:    parameter.MergeSpawnScale,
		ShrinkFactor:  parameter.MergeShrinkFactor,
		SettleEpsilon: parameter.MergeSettleEpsilon,
		Impulse:       parameter.MergeImpulse,
		Material:      physics.DefaultMaterial(),
	}
}
