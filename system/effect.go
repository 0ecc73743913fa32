package system

import (
	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/core"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

// EffectSystem spawns and decays cosmetic particles
// Particles never affect gameplay; they only consume the shared random source
type EffectSystem struct {
	world *engine.World
}

func NewEffectSystem(world *engine.World) *EffectSystem {
	return &EffectSystem{world: world}
}

func (s *EffectSystem) Name() string { return "effect" }

// Burst spawns count particles at a point with random per-axis velocity
func (s *EffectSystem) Burst(x, y float64, count int, color core.RGB) {
	rng := s.world.Rand
	for i := 0; i < count; i++ {
		s.world.Particles = append(s.world.Particles, &component.Particle{
			X:     x,
			Y:     y,
			VX:    engine.RandJitter(rng, parameter.ParticleSpread),
			VY:    engine.RandJitter(rng, parameter.ParticleSpread),
			Life:  parameter.ParticleLifetime,
			Color: color,
		})
	}
}

// Update integrates particles under gravity and drops expired ones
func (s *EffectSystem) Update(dt float64) {
	kept := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += parameter.ParticleGravity * dt
		p.Life -= dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clear(s.world.Particles[len(kept):])
	s.world.Particles = kept
}
