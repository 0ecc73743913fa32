package system

import (
	"math"
	"slices"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/core"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/vmath"
)

// BotSystem drives every bot, then removes the dead ones
// Bots are walked newest first so removal keeps earlier indices stable
type BotSystem struct {
	world   *engine.World
	effects *EffectSystem

	statSpawned   *atomic.Int64
	statKilled    *atomic.Int64
	statShots     *atomic.Int64
	statBuilt     *atomic.Int64
	statBuildMiss *atomic.Int64
}

func NewBotSystem(world *engine.World, effects *EffectSystem) *BotSystem {
	m := world.Metrics
	return &BotSystem{
		world:         world,
		effects:       effects,
		statSpawned:   m.Ints.Get("bot.spawned"),
		statKilled:    m.Ints.Get("bot.killed"),
		statShots:     m.Ints.Get("bot.shots"),
		statBuilt:     m.Ints.Get("bot.walls_built"),
		statBuildMiss: m.Ints.Get("bot.walls_blocked"),
	}
}

func (s *BotSystem) Name() string { return "bot" }

func (s *BotSystem) Update(dt float64) {
	w := s.world
	for i := len(w.Bots) - 1; i >= 0; i-- {
		b := w.Bots[i]
		s.updateBot(b, dt)

		if b.Health <= 0 {
			s.effects.Burst(b.X, b.Y, parameter.ParticlesDeath, core.RGBRed)
			w.Player.Kills++
			w.Bots = slices.Delete(w.Bots, i, i+1)
			s.statKilled.Add(1)
			w.Log.WithFields(logrus.Fields{
				"x":         b.X,
				"y":         b.Y,
				"kills":     w.Player.Kills,
				"remaining": len(w.Bots),
			}).Debug("bot killed")
		}
	}
}

func (s *BotSystem) updateBot(b *component.Bot, dt float64) {
	p := s.world.Player
	dx := p.X - b.X
	dy := p.Y - b.Y
	d := math.Hypot(dx, dy)

	if d > 0 && d < parameter.BotEngageRange {
		s.move(b, dx/d, dy/d, d, dt)
	}

	// Timers run regardless of band; decisions use the pre-move offset
	b.BuildTimer -= dt
	if b.BuildTimer <= 0 && d < parameter.BotBuildRange && s.world.LineOfSight(b.X, b.Y, p.X, p.Y) {
		s.build(b, math.Atan2(dy, dx))
		b.BuildTimer = engine.RandRange(s.world.Rand, parameter.BotBuildTimerMin, parameter.BotBuildTimerMax)
	}

	b.ShootTimer -= dt
	if b.ShootTimer <= 0 && d < parameter.BotShootRange {
		s.shoot(b, math.Atan2(dy, dx))
		b.ShootTimer = engine.RandRange(s.world.Rand, parameter.BotShootTimerMin, parameter.BotShootTimerMax)
	}
}

// move steps the bot along its band direction, reverting fully on wall contact
func (s *BotSystem) move(b *component.Bot, nx, ny, d, dt float64) {
	ox, oy := b.X, b.Y

	b.MoveTimer += dt
	if b.MoveTimer > parameter.BotStrafeFlipInterval {
		b.StrafeDir = -b.StrafeDir
		b.MoveTimer = 0
	}

	var mx, my float64
	switch {
	case d < parameter.BotRetreatRange:
		k := b.StrafeDir * parameter.BotRetreatStrafeWeight
		mx = -nx + ny*k
		my = -ny - nx*k
	case d > parameter.BotApproachRange:
		mx, my = nx, ny
	default:
		mx = ny * b.StrafeDir
		my = -nx * b.StrafeDir
	}

	if l := math.Hypot(mx, my); l > 0 {
		b.X += mx / l * b.Speed * dt
		b.Y += my / l * b.Speed * dt
	}

	if s.world.CircleBlocked(b.X, b.Y, b.HitRadius()) {
		b.X, b.Y = ox, oy
	}

	b.X, b.Y = s.world.ClampToBounds(b.X, b.Y, b.HitRadius())
}

// build places a wall just ahead of the bot toward the player when the spot is free
func (s *BotSystem) build(b *component.Bot, angle float64) {
	rect := vmath.Rect{
		X: b.X + math.Cos(angle)*parameter.BotBuildReach - parameter.BotBuildWidth/2,
		Y: b.Y + math.Sin(angle)*parameter.BotBuildReach - parameter.BotBuildHeight/2,
		W: parameter.BotBuildWidth,
		H: parameter.BotBuildHeight,
	}
	if !s.world.CanPlace(rect) {
		s.statBuildMiss.Add(1)
		return
	}
	s.world.PlaceWall(rect)
	s.statBuilt.Add(1)
}

func (s *BotSystem) shoot(b *component.Bot, angle float64) {
	a := angle + engine.RandJitter(s.world.Rand, 2*parameter.BotShotJitter)
	s.world.BotBullets = append(s.world.BotBullets, &component.Bullet{
		X:      b.X,
		Y:      b.Y,
		VX:     math.Cos(a) * parameter.BotShotSpeed,
		VY:     math.Sin(a) * parameter.BotShotSpeed,
		Damage: parameter.BotShotDamage,
		Color:  core.RGBBotBullet,
	})
	s.statShots.Add(1)
}
