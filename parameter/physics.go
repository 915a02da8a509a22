package parameter

// Central gravity
const (
	// GravityDeadZone is the distance inside which no force is applied
	GravityDeadZone = 10.0

	// GravityNearRadius splits the two force tiers
	GravityNearRadius = 40.0

	// GravityFarCoefficient scales force by mass beyond GravityNearRadius
	GravityFarCoefficient = 0.0005

	// GravityNearCoefficient scales force by mass inside GravityNearRadius
	GravityNearCoefficient = 0.0002
)

// Stabilizer
const (
	// StabilizeSpeedThreshold is the speed (units/tick) under which damping starts
	StabilizeSpeedThreshold = 1.0

	// StabilizeDamping is the per-tick velocity multiplier while under threshold
	StabilizeDamping = 0.95

	// StabilizeStopSpeed snaps velocity to exactly zero
	StabilizeStopSpeed = 0.03
)

// Ball material
const (
	BallRestitution = 0.5
	BallFriction    = 0.05
	BallFrictionAir = 0.02
	// BallDensity is mass per unit area
	BallDensity = 0.001
)

// Built-in solver
const (
	// PhysicsRestingThreshold is the closing speed under which contacts do not bounce
	PhysicsRestingThreshold = 1.0

	// PhysicsIterations is the number of positional solver passes per step
	PhysicsIterations = 4

	// PhysicsSlop is the allowed penetration before correction
	PhysicsSlop = 0.05

	// PhysicsCorrection is the share of penetration resolved per pass
	PhysicsCorrection = 0.8
)

// Physics backend names
const (
	BackendCircle   = "circle"
	BackendChipmunk = "chipmunk"
)
