package component

import "github.com/lixenwraith/storm-arena/vmath"

// SafeZone is the shrinking circle outside of which entities take damage
type SafeZone struct {
	X, Y float64

	Radius        float64
	InitialRadius float64
	TargetRadius  float64

	// ShrinkRate is radius lost per second
	ShrinkRate float64

	// Damage is health lost per second outside the radius
	Damage float64
}

// Outside reports whether the point lies beyond the current radius
func (z *SafeZone) Outside(x, y float64) bool {
	return vmath.Distance(x, y, z.X, z.Y) > z.Radius
}

// Progress is the remaining shrink fraction: 1 at spawn, 0 at target radius
func (z *SafeZone) Progress() float64 {
	span := z.InitialRadius - z.TargetRadius
	if span <= 0 {
		return 0
	}
	return (z.Radius - z.TargetRadius) / span
}
