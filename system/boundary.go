package system

import (
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// Zone classifies one body against the boundary thresholds
type Zone uint8

const (
	ZoneInside Zone = iota
	ZoneWarning
	ZoneGameOver
)

// Verdict is the outcome of one boundary scan
type Verdict struct {
	Warning  bool
	GameOver bool
	Offender physics.BodyID
}

// BoundaryMonitor measures the outer edge of each body against the warning and game-over rings
type BoundaryMonitor struct {
	cfg    BoundaryConfig
	center vmath.Vec2
}

func NewBoundaryMonitor(cfg BoundaryConfig, center vmath.Vec2) *BoundaryMonitor {
	return &BoundaryMonitor{cfg: cfg, center: center}
}

// EdgeDistance is the distance from center to the far edge of the body
func (m *BoundaryMonitor) EdgeDistance(b physics.BodyState) float64 {
	return vmath.V2Dist(b.Pos, m.center) + b.Radius
}

// Classify places a body in a zone; the exempt body never reaches ZoneGameOver
// and only warns once slower than the warning gate
func (m *BoundaryMonitor) Classify(b physics.BodyState, exempt bool) Zone {
	edge := m.EdgeDistance(b)
	if !exempt && edge > m.cfg.GameOverRadius && b.Speed < m.cfg.GameOverSpeedGate {
		return ZoneGameOver
	}
	if edge > m.cfg.WarningRadius && (!exempt || b.Speed < m.cfg.WarningSpeedGate) {
		return ZoneWarning
	}
	return ZoneInside
}

// Scan classifies every body; the first game-over body in order is the offender
func (m *BoundaryMonitor) Scan(bodies []physics.BodyState, exempt physics.BodyID) Verdict {
	var v Verdict
	for _, b := range bodies {
		switch m.Classify(b, exempt != 0 && b.ID == exempt) {
		case ZoneGameOver:
			v.Warning = true
			if !v.GameOver {
				v.GameOver = true
				v.Offender = b.ID
			}
		case ZoneWarning:
			v.Warning = true
		}
	}
	return v
}
