// Package render draws session snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-merge/engine"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// statusRows is the number of rows reserved above the arena
const statusRows = 1

// TerminalRenderer draws the bowl, balls, preview and status line
type TerminalRenderer struct {
	screen tcell.Screen
	base   tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw renders one frame and shows it
func (r *TerminalRenderer) Draw(snap engine.Snapshot) {
	w, h := r.screen.Size()
	r.screen.Fill(' ', r.base)

	vp := NewViewport(w, h, statusRows, snap.Arena)
	r.drawRings(vp, snap)
	for _, b := range snap.Balls {
		r.drawDisc(vp, b.Pos, b.Radius, b.Rank, '█')
	}
	if snap.Preview != nil && snap.Phase == engine.PhasePlaying {
		r.drawDisc(vp, snap.Preview.Pos, snap.Preview.Radius, snap.Preview.Rank, '▒')
	}
	r.drawStatus(w, snap)
	r.drawOverlay(w, h, snap)

	r.screen.Show()
}

func (r *TerminalRenderer) drawRings(vp Viewport, snap engine.Snapshot) {
	bowl := r.base.Foreground(RgbBowl)
	orbit := r.base.Foreground(RgbOrbit)
	warn := r.base.Foreground(RgbWarning)
	showWarning := snap.Warning && snap.Phase != engine.PhaseOver
	center := snap.Arena.Center

	for y := vp.OffsetY; y < vp.OffsetY+vp.Rows; y++ {
		for x := vp.OffsetX; x < vp.OffsetX+vp.Cols; x++ {
			p := vp.ToWorld(x, y)
			switch {
			case showWarning && vp.OnRing(p, center, snap.Arena.WarningLineRadius):
				r.screen.SetContent(x, y, '•', nil, warn)
			case vp.OnRing(p, center, snap.Arena.BowlRadius):
				r.screen.SetContent(x, y, '·', nil, bowl)
			case vp.OnRing(p, center, snap.Arena.OrbitRadius) && (x+y)%2 == 0:
				r.screen.SetContent(x, y, '.', nil, orbit)
			}
		}
	}
}

// drawDisc fills every cell whose center lies inside the circle, labeling the center with the rank number
func (r *TerminalRenderer) drawDisc(vp Viewport, pos vmath.Vec2, radius float64, rank int, fill rune) {
	style := r.base.Foreground(RankColor(rank))
	x0, y0 := vp.ToCell(vmath.V2(pos.X-radius, pos.Y-radius))
	x1, y1 := vp.ToCell(vmath.V2(pos.X+radius, pos.Y+radius))
	rSq := radius * radius

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.V2MagSq(vmath.V2Sub(vp.ToWorld(x, y), pos)) > rSq {
				continue
			}
			r.screen.SetContent(x, y, fill, nil, style)
			drawn = true
		}
	}

	cx, cy := vp.ToCell(pos)
	if !drawn {
		r.screen.SetContent(cx, cy, '●', nil, style)
		return
	}
	label := fmt.Sprintf("%d", rank+1)
	r.drawText(cx-len(label)/2, cy, r.base.Foreground(RgbBackground).Background(RankColor(rank)), label)
}

func (r *TerminalRenderer) drawStatus(w int, snap engine.Snapshot) {
	style := r.base.Foreground(RgbStatusText)
	status := fmt.Sprintf(" Score: %d   Tier: %d   Next: %d", snap.Score, snap.Tier, snap.NextRank+1)
	r.drawText(0, 0, style, status)

	help := "space: drop  r: retry  q: quit "
	if x := w - len(help); x > len(status) {
		r.drawText(x, 0, style, help)
	}
}

func (r *TerminalRenderer) drawOverlay(w, h int, snap engine.Snapshot) {
	var lines []string
	switch snap.Phase {
	case engine.PhaseNotStarted:
		lines = []string{"ORBIT MERGE", "press space to start"}
	case engine.PhaseOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", snap.Score), "press r to retry"}
	default:
		return
	}

	style := r.base.Foreground(RgbOverlay).Bold(true)
	top := h/2 - len(lines)/2
	for i, line := range lines {
		r.drawText((w-len(line))/2, top+i, style, line)
	}
}

func (r *TerminalRenderer) drawText(x, y int, style tcell.Style, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
