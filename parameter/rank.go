package parameter

import "fmt"

// RankRadii maps rank to nominal radius; strictly increasing
// Diameters 25, 30, 40, 50 ... 130
var RankRadii = [...]float64{12.5, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65}

// RankColors is the fallback palette when sprites are unavailable
var RankColors = [...]string{
	"#FF3333", "#FF9933", "#FFFF33", "#33FF33", "#33FFFF",
	"#3333FF", "#9933FF", "#FF33FF", "#FFFFFF", "#000000",
	"#FF5733", "#33FF57",
}

// MaxRank is the top rank; balls of this rank never merge
const MaxRank = len(RankRadii) - 1

// ClampRank limits r to [0, MaxRank]
func ClampRank(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxRank {
		return MaxRank
	}
	return r
}

// RankRadius returns the nominal radius of rank r
func RankRadius(r int) float64 {
	return RankRadii[ClampRank(r)]
}

// RankColor returns the palette hex string of rank r
func RankColor(r int) string {
	return RankColors[ClampRank(r)]
}

// RankSpriteKey returns the asset name of rank r ("001.PNG" for rank 0)
func RankSpriteKey(r int) string {
	return fmt.Sprintf("%03d.PNG", ClampRank(r)+1)
}
