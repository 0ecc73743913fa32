package parameter

// Safe zone
const (
	// StormTargetRadius is the radius the safe zone shrinks to
	StormTargetRadius = 300.0

	// StormShrinkRate is radius lost per second
	StormShrinkRate = 8.0

	// StormDamage is damage per second applied outside the radius
	StormDamage = 15.0
)
