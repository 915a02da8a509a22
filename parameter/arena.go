package parameter

// Arena geometry in world units, one unit = one canvas pixel of the 460x460 play field
const (
	ArenaSize    = 460.0
	ArenaCenterX = ArenaSize / 2
	ArenaCenterY = ArenaSize / 2

	// BowlRadius is the drawn bowl outline
	BowlRadius = 150.0

	// OrbitRadius is the circle the preview ball travels before launch
	OrbitRadius = 200.0

	// WarningRadius is the edge distance that lights the warning ring
	WarningRadius = 145.0

	// WarningLineRadius is where the warning ring is drawn
	WarningLineRadius = 150.0

	// GameOverRadius is the edge distance that ends the round for a resting ball
	GameOverRadius = 152.5
)
