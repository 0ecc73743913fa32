package component

import "github.com/lixenwraith/storm-arena/core"

// Particle is a cosmetic fragment with no gameplay effect
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Life is remaining seconds
	Life  float64
	Color core.RGB
}
