package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-merge/parameter"
)

var (
	RgbBackground = tcell.NewRGBColor(20, 20, 28)    // Near black
	RgbBowl       = tcell.NewRGBColor(110, 110, 130) // Muted gray
	RgbOrbit      = tcell.NewRGBColor(60, 60, 80)    // Dark gray
	RgbWarning    = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbStatusText = tcell.NewRGBColor(230, 230, 230) // Off white
	RgbOverlay    = tcell.NewRGBColor(255, 200, 60)  // Amber
)

// rankColors caches the rank palette as terminal colors
var rankColors = func() []tcell.Color {
	out := make([]tcell.Color, len(parameter.RankColors))
	for i, hex := range parameter.RankColors {
		out[i] = tcell.GetColor(hex)
	}
	return out
}()

// RankColor returns the terminal color of a rank
func RankColor(rank int) tcell.Color {
	return rankColors[parameter.ClampRank(rank)]
}
