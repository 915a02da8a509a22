package render

import (
	"math"

	"github.com/lixenwraith/orbit-merge/engine"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// cellAspect is the height of a terminal cell in widths
const cellAspect = 2.0

// Viewport maps world units onto terminal cells, keeping the arena round
type Viewport struct {
	OffsetX, OffsetY int
	Cols, Rows       int
	// Scale is world units per cell column; a row spans Scale*cellAspect
	Scale  float64
	origin vmath.Vec2
}

// NewViewport fits the square arena into a w×h cell area starting at row top
func NewViewport(w, h, top int, arena engine.ArenaView) Viewport {
	rows := h - top
	if w < 1 {
		w = 1
	}
	if rows < 1 {
		rows = 1
	}
	scale := math.Max(arena.Size/float64(w), arena.Size/(float64(rows)*cellAspect))
	cols := int(math.Ceil(arena.Size / scale))
	rowsUsed := int(math.Ceil(arena.Size / (scale * cellAspect)))

	return Viewport{
		OffsetX: (w - cols) / 2,
		OffsetY: top + (rows-rowsUsed)/2,
		Cols:    cols,
		Rows:    rowsUsed,
		Scale:   scale,
		origin:  vmath.V2(arena.Center.X-arena.Size/2, arena.Center.Y-arena.Size/2),
	}
}

// ToCell returns the screen cell containing a world point
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := int(math.Floor((p.X - v.origin.X) / v.Scale))
	y := int(math.Floor((p.Y - v.origin.Y) / (v.Scale * cellAspect)))
	return v.OffsetX + x, v.OffsetY + y
}

// ToWorld returns the world point at the center of a screen cell
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		v.origin.X+(float64(x-v.OffsetX)+0.5)*v.Scale,
		v.origin.Y+(float64(y-v.OffsetY)+0.5)*v.Scale*cellAspect,
	)
}

// OnRing reports whether the cell at world point p straddles a ring of radius r
func (v Viewport) OnRing(p, center vmath.Vec2, r float64) bool {
	d := vmath.V2Dist(p, center)
	return math.Abs(d-r) <= v.Scale*0.5
}
