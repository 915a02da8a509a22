package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Midpoint returns the point halfway between a and b
func V2Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// V2Polar returns center + r*(cos a, sin a)
func V2Polar(center Vec2, r, angle float64) Vec2 {
	return Vec2{center.X + r*math.Cos(angle), center.Y + r*math.Sin(angle)}
}

// V2Toward returns the unit direction from p to target and the distance between them
// Direction is zero when the points coincide
func V2Toward(p, target Vec2) (dir Vec2, dist float64) {
	d := V2Sub(target, p)
	dist = V2Mag(d)
	if dist == 0 {
		return Vec2{}, 0
	}
	return V2Scale(d, 1/dist), dist
}
