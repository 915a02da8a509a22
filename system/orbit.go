package system

import (
	"github.com/lixenwraith/orbit-merge/vmath"
)

// OrbitController moves the preview clockwise around the bowl
type OrbitController struct {
	center vmath.Vec2
	radius float64
	angle  float64
	speed  float64
}

func NewOrbitController(center vmath.Vec2, radius, speed float64) *OrbitController {
	return &OrbitController{
		center: center,
		radius: radius,
		speed:  speed,
	}
}

// Advance steps the angle by one tick, wrapped into [0, 2π)
func (o *OrbitController) Advance() {
	o.angle = vmath.WrapAngle(o.angle - o.speed)
}

// Position maps an angle to its point on the orbit
func (o *OrbitController) Position(angle float64) vmath.Vec2 {
	return vmath.V2Polar(o.center, o.radius, angle)
}

// Current returns the point for the current angle
func (o *OrbitController) Current() vmath.Vec2 {
	return o.Position(o.angle)
}

func (o *OrbitController) Angle() float64 { return o.angle }
func (o *OrbitController) Speed() float64 { return o.speed }
func (o *OrbitController) Radius() float64 { return o.radius }

func (o *OrbitController) SetSpeed(speed float64) {
	o.speed = speed
}

// Reset returns the angle to zero; speed is owned by the caller
func (o *OrbitController) Reset() {
	o.angle = 0
}
