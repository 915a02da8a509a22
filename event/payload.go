package event

import (
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// LaunchPayload describes a launched ball
type LaunchPayload struct {
	Body physics.BodyID `toml:"body"`
	Rank int            `toml:"rank"`
	Pos  vmath.Vec2     `toml:"pos"`
}

// PreviewPayload describes the preview ball now orbiting
type PreviewPayload struct {
	Rank int `toml:"rank"`
	Next int `toml:"next"`
}

// RankUpPayload describes one merge
type RankUpPayload struct {
	Body       physics.BodyID `toml:"body"`
	Rank       int            `toml:"rank"`
	Pos        vmath.Vec2     `toml:"pos"`
	ScoreDelta int            `toml:"score_delta"`
	Score      int            `toml:"score"`
}

// TierUpPayload carries the new difficulty tier and orbit speed
type TierUpPayload struct {
	Tier       int     `toml:"tier"`
	OrbitSpeed float64 `toml:"orbit_speed"`
}

// WarningPayload carries the new warning state
type WarningPayload struct {
	Active bool `toml:"active"`
}

// GameOverPayload carries the final score and the ball that crossed the line
type GameOverPayload struct {
	FinalScore int            `toml:"final_score"`
	Offender   physics.BodyID `toml:"offender"`
}
