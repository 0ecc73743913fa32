package system

import (
	"slices"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/core"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/vmath"
)

// BulletSystem advances both bullet pools and resolves wall and target hits
// Player bullets resolve against bots, bot bullets against the player
// Hits are tested on the advanced position only, walls before targets
type BulletSystem struct {
	world   *engine.World
	effects *EffectSystem

	statWallHits     *atomic.Int64
	statWallsBroken  *atomic.Int64
	statTargetHits   *atomic.Int64
	statRefundsGiven *atomic.Int64
}

func NewBulletSystem(world *engine.World, effects *EffectSystem) *BulletSystem {
	m := world.Metrics
	return &BulletSystem{
		world:            world,
		effects:          effects,
		statWallHits:     m.Ints.Get("bullet.wall_hits"),
		statWallsBroken:  m.Ints.Get("bullet.walls_broken"),
		statTargetHits:   m.Ints.Get("bullet.target_hits"),
		statRefundsGiven: m.Ints.Get("bullet.refunds"),
	}
}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Update(dt float64) {
	w := s.world
	w.PlayerBullets = resolveBullets(s, w.PlayerBullets, dt, w.Bots, true)
	w.BotBullets = resolveBullets(s, w.BotBullets, dt, []*component.Player{w.Player}, false)
}

// resolveBullets processes one pool; fromPlayer enables the wall refund roll
// and disables the damage flash
func resolveBullets[T component.Target](s *BulletSystem, list []*component.Bullet, dt float64, targets []T, fromPlayer bool) []*component.Bullet {
	for i := len(list) - 1; i >= 0; i-- {
		b := list[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt

		if !s.world.InBounds(b.X, b.Y) {
			list = slices.Delete(list, i, i+1)
			continue
		}

		if s.hitWall(b, fromPlayer) {
			list = slices.Delete(list, i, i+1)
			continue
		}

		if hitTargets(s, b, targets, fromPlayer) {
			list = slices.Delete(list, i, i+1)
		}
	}
	return list
}

// hitWall applies the bullet to the newest wall containing it
func (s *BulletSystem) hitWall(b *component.Bullet, fromPlayer bool) bool {
	w := s.world
	for j := len(w.Walls) - 1; j >= 0; j-- {
		wall := w.Walls[j]
		if !vmath.PointInRectOpen(b.X, b.Y, wall.Rect) {
			continue
		}

		s.statWallHits.Add(1)
		if wall.Damage(b.Damage) {
			cx, cy := wall.Center()
			s.effects.Burst(cx, cy, parameter.ParticlesDebris, core.RGBDebris)
			if fromPlayer && w.Rand.Float64() < parameter.WallRefundChance {
				w.Player.AddMaterials(parameter.WallRefund)
				s.statRefundsGiven.Add(1)
			}
			w.RemoveWall(j)
			s.statWallsBroken.Add(1)
			w.Log.WithFields(logrus.Fields{
				"x":           wall.X,
				"y":           wall.Y,
				"from_player": fromPlayer,
			}).Debug("wall destroyed")
		}
		s.effects.Burst(b.X, b.Y, parameter.ParticlesImpact, core.RGBImpact)
		return true
	}
	return false
}

// hitTargets damages living targets under the bullet
// Returns true once a non-piercing bullet is spent
func hitTargets[T component.Target](s *BulletSystem, b *component.Bullet, targets []T, fromPlayer bool) bool {
	w := s.world
	for k := len(targets) - 1; k >= 0; k-- {
		t := targets[k]
		if !t.Alive() {
			continue
		}
		tx, ty := t.Center()
		if vmath.Distance(b.X, b.Y, tx, ty) >= t.HitRadius() {
			continue
		}

		t.TakeDamage(b.Damage)
		s.statTargetHits.Add(1)
		if !fromPlayer {
			w.Player.DamageFlash = parameter.DamageFlashOnHit
		}
		s.effects.Burst(b.X, b.Y, parameter.ParticlesHit, core.RGBRed)
		if !b.Pierce {
			return true
		}
	}
	return false
}
