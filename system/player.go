package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

// PlayerSystem applies continuous input and discrete player actions
type PlayerSystem struct {
	world   *engine.World
	effects *EffectSystem
}

func NewPlayerSystem(world *engine.World, effects *EffectSystem) *PlayerSystem {
	return &PlayerSystem{world: world, effects: effects}
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Update(dt float64) {
	w := s.world
	p := w.Player
	in := w.Input
	ox, oy := p.X, p.Y

	// Axes are independent; diagonals are intentionally faster
	step := p.Speed * dt
	if in.Up {
		p.Y -= step
	}
	if in.Down {
		p.Y += step
	}
	if in.Left {
		p.X -= step
	}
	if in.Right {
		p.X += step
	}

	p.X, p.Y = w.ClampToBounds(p.X, p.Y, p.Radius)
	if w.CircleBlocked(p.X, p.Y, p.Radius) {
		p.X, p.Y = ox, oy
	}

	if p.Mode == component.ModeCombat && in.Fire && p.ShootCooldown <= 0 {
		s.fire()
	}
}

// HandleAction applies a discrete command, returning false when it had no effect
func (s *PlayerSystem) HandleAction(a engine.Action) bool {
	p := s.world.Player
	switch a.Kind {
	case engine.ActionToggleMode:
		if p.Mode == component.ModeCombat {
			p.Mode = component.ModeBuild
		} else {
			p.Mode = component.ModeCombat
		}
		return true

	case engine.ActionToggleRotation:
		p.BuildRotation = 1 - p.BuildRotation
		return true

	case engine.ActionPlaceWall:
		return s.placeWall()

	case engine.ActionUseMedkit:
		if p.Medkits <= 0 {
			return false
		}
		p.Heal(parameter.MedkitHeal)
		p.Medkits--
		return true

	case engine.ActionSelectWeapon:
		if _, ok := parameter.Weapon(a.Index); !ok {
			s.world.Log.WithField("index", a.Index).Debug("weapon selection out of range")
			return false
		}
		p.Weapon = a.Index
		return true
	}
	return false
}

// placeWall builds the preview wall when mode, cooldown, materials and space allow
func (s *PlayerSystem) placeWall() bool {
	w := s.world
	p := w.Player
	if p.Mode != component.ModeBuild || p.BuildCooldown > 0 || p.Materials < parameter.BuildCost {
		return false
	}

	rect := w.BuildPreview()
	if !w.CanPlace(rect) {
		return false
	}

	w.PlaceWall(rect)
	p.Materials -= parameter.BuildCost
	p.BuildCooldown = parameter.BuildCooldown
	w.Log.WithFields(logrus.Fields{
		"x":         rect.X,
		"y":         rect.Y,
		"materials": p.Materials,
	}).Debug("wall placed")
	return true
}
