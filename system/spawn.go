package system

import (
	"github.com/lixenwraith/orbit-merge/component"
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/vmath"
)

// SpawnBall creates a body of the rank's nominal radius and registers its record
func SpawnBall(w physics.World, balls *component.BallStore, rank int, pos vmath.Vec2, mat physics.Material) (physics.BodyID, *component.Ball) {
	rank = parameter.ClampRank(rank)
	id := w.CreateBody(physics.BodySpec{
		Pos:      pos,
		Radius:   parameter.RankRadius(rank),
		Material: mat,
	})
	rec := balls.Set(id, component.Ball{Rank: rank})
	return id, rec
}
