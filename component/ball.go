// Package component holds per-body game records kept beside the physics world
package component

// Ball is the game-side record of one body, keyed by its physics.BodyID
type Ball struct {
	Rank int

	// Consumed is set the instant a merge claims the body, before removal completes
	Consumed bool

	// Settling marks a just-merged ball shrinking back to TargetRadius
	Settling     bool
	TargetRadius float64
}
