package component

import "github.com/lixenwraith/storm-arena/core"

// Bullet is a linear projectile; ownership is implied by the pool holding it
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Damage float64
	Color  core.RGB
	Pierce bool
}
