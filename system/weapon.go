package system

import (
	"math"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

// fire discharges the selected weapon toward the aim point
func (s *PlayerSystem) fire() {
	w := s.world
	p := w.Player

	spec, ok := parameter.Weapon(p.Weapon)
	if !ok {
		p.Weapon = 0
		spec, _ = parameter.Weapon(0)
	}
	p.ShootCooldown = spec.Cooldown

	a := math.Atan2(w.Input.AimY-p.Y, w.Input.AimX-p.X)

	if spec.Recoil > 0 {
		ox, oy := p.X, p.Y
		p.X, p.Y = w.ClampToBounds(p.X-math.Cos(a)*spec.Recoil, p.Y-math.Sin(a)*spec.Recoil, p.Radius)
		if w.CircleBlocked(p.X, p.Y, p.Radius) {
			p.X, p.Y = ox, oy
		}
	}

	for i := 0; i < spec.Pellets; i++ {
		ang := a + engine.RandJitter(w.Rand, spec.Spread)
		w.PlayerBullets = append(w.PlayerBullets, &component.Bullet{
			X:      p.X,
			Y:      p.Y,
			VX:     math.Cos(ang) * spec.Speed,
			VY:     math.Sin(ang) * spec.Speed,
			Damage: spec.Damage,
			Color:  spec.Color,
			Pierce: spec.Pierce,
		})
	}

	s.effects.Burst(
		p.X+math.Cos(a)*parameter.MuzzleOffset,
		p.Y+math.Sin(a)*parameter.MuzzleOffset,
		parameter.ParticlesMuzzle,
		spec.Color,
	)
}
