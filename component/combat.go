package component

// Target is a living entity that bullets can hit
type Target interface {
	Center() (x, y float64)

	// HitRadius is the stated collision radius, or half the hit-box size
	HitRadius() float64

	Alive() bool

	// TakeDamage reduces health, flooring at zero
	TakeDamage(amount float64)
}

// clampHealth keeps stored health non-negative
func clampHealth(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
