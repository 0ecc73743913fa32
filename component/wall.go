package component

import "github.com/lixenwraith/storm-arena/vmath"

// Wall is a destructible axis-aligned obstacle
type Wall struct {
	vmath.Rect

	Durability    float64
	MaxDurability float64
}

// Damage reduces durability and reports whether the wall is destroyed
func (w *Wall) Damage(amount float64) bool {
	w.Durability -= amount
	if w.Durability <= 0 {
		w.Durability = 0
		return true
	}
	return false
}

// Integrity is remaining durability as a fraction in [0,1]
func (w *Wall) Integrity() float64 {
	if w.MaxDurability <= 0 {
		return 0
	}
	return w.Durability / w.MaxDurability
}
