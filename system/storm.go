package system

import (
	"math"

	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

// StormSystem shrinks the safe zone and damages everything caught outside it
type StormSystem struct {
	world *engine.World
}

func NewStormSystem(world *engine.World) *StormSystem {
	return &StormSystem{world: world}
}

func (s *StormSystem) Name() string { return "storm" }

func (s *StormSystem) Update(dt float64) {
	w := s.world
	z := &w.Zone

	z.Radius = math.Max(z.TargetRadius, z.Radius-z.ShrinkRate*dt)
	dmg := z.Damage * dt

	p := w.Player
	if z.Outside(p.X, p.Y) {
		p.TakeDamage(dmg)
		p.DamageFlash = parameter.DamageFlashOnStorm
	}

	for _, b := range w.Bots {
		if z.Outside(b.X, b.Y) {
			b.TakeDamage(dmg)
		}
	}

	p.Health = math.Max(0, p.Health)
}
