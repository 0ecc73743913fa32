package engine

import (
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/status"
	"github.com/lixenwraith/storm-arena/vmath"
)

// Simulation owns the world and advances it one tick at a time
// Systems run in registration order; see system.NewSimulation for the stock order
type Simulation struct {
	world *World

	systems   []System
	handlers  []ActionHandler
	resetters []Resetter

	ticks     *atomic.Int64
	bots      *atomic.Int64
	walls     *atomic.Int64
	pBullets  *atomic.Int64
	bBullets  *atomic.Int64
	particles *atomic.Int64
	step      *status.AtomicFloat
}

// NewSimulation wraps a world; systems are added with AddSystem before Start
func NewSimulation(w *World) *Simulation {
	m := w.Metrics
	return &Simulation{
		world:     w,
		ticks:     m.Ints.Get(status.KeyTicks),
		bots:      m.Ints.Get(status.KeyBots),
		walls:     m.Ints.Get(status.KeyWalls),
		pBullets:  m.Ints.Get(status.KeyPlayerBullets),
		bBullets:  m.Ints.Get(status.KeyBotBullets),
		particles: m.Ints.Get(status.KeyParticles),
		step:      m.Floats.Get(status.KeyStep),
	}
}

// AddSystem appends a system to the tick order and registers its optional roles
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	if h, ok := sys.(ActionHandler); ok {
		s.handlers = append(s.handlers, h)
	}
	if r, ok := sys.(Resetter); ok {
		s.resetters = append(s.resetters, r)
	}
}

// Systems returns the registered systems in tick order
func (s *Simulation) Systems() []System {
	out := make([]System, len(s.systems))
	copy(out, s.systems)
	return out
}

// Start populates the current world without moving the player
func (s *Simulation) Start() {
	for _, r := range s.resetters {
		r.Reset()
	}
	s.publish()
	s.world.Log.WithFields(logrus.Fields{
		"bots": len(s.world.Bots),
	}).Info("match started")
}

// Reset reinitializes every entity, drops the player at a random in-bounds point and repopulates
func (s *Simulation) Reset() {
	w := s.world
	r := parameter.PlayerRadius
	px := RandRange(w.Rand, r, w.Config.Width-r)
	py := RandRange(w.Rand, r, w.Config.Height-r)
	w.resetEntities(px, py)
	s.Start()
}

// SetInput replaces the continuous input state read by the next tick
func (s *Simulation) SetInput(in Input) {
	s.world.Input = in
}

// HandleAction applies a discrete action; only Restart is honored once the match is over
func (s *Simulation) HandleAction(a Action) bool {
	if a.Kind == ActionRestart {
		s.Reset()
		return true
	}
	if s.world.State.Terminal() {
		return false
	}

	handled := false
	for _, h := range s.handlers {
		if h.HandleAction(a) {
			handled = true
		}
	}
	return handled
}

// Tick advances the match by dt seconds
// dt is clamped to [0, MaxStep]; NaN counts as 0
func (s *Simulation) Tick(dt float64) {
	w := s.world
	if w.State.Terminal() {
		return
	}

	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if w.Config.MaxStep > 0 && dt > w.Config.MaxStep {
		dt = w.Config.MaxStep
	}

	w.Elapsed += dt
	p := w.Player
	p.ShootCooldown = math.Max(0, p.ShootCooldown-dt)
	p.BuildCooldown = math.Max(0, p.BuildCooldown-dt)
	p.DamageFlash = math.Max(0, p.DamageFlash-dt*parameter.DamageFlashDecayRate)

	for _, sys := range s.systems {
		sys.Update(dt)
	}

	w.updateCamera()

	switch {
	case p.Health <= 0:
		w.State = StateLost
	case len(w.Bots) == 0:
		w.State = StateWon
	}
	if w.State.Terminal() {
		w.Log.WithFields(logrus.Fields{
			"outcome": w.State.String(),
			"kills":   p.Kills,
			"elapsed": w.Elapsed,
		}).Info("match ended")
	}

	s.ticks.Add(1)
	s.step.Set(dt)
	s.publish()
}

func (s *Simulation) publish() {
	w := s.world
	s.bots.Store(int64(len(w.Bots)))
	s.walls.Store(int64(len(w.Walls)))
	s.pBullets.Store(int64(len(w.PlayerBullets)))
	s.bBullets.Store(int64(len(w.BotBullets)))
	s.particles.Store(int64(len(w.Particles)))
}

// Read accessors for the presentation layer

func (s *Simulation) World() *World                      { return s.world }
func (s *Simulation) State() MatchState                  { return s.world.State }
func (s *Simulation) Player() *component.Player          { return s.world.Player }
func (s *Simulation) Bots() []*component.Bot             { return s.world.Bots }
func (s *Simulation) Walls() []*component.Wall           { return s.world.Walls }
func (s *Simulation) PlayerBullets() []*component.Bullet { return s.world.PlayerBullets }
func (s *Simulation) BotBullets() []*component.Bullet    { return s.world.BotBullets }
func (s *Simulation) Particles() []*component.Particle   { return s.world.Particles }
func (s *Simulation) Zone() component.SafeZone           { return s.world.Zone }
func (s *Simulation) Elapsed() float64                   { return s.world.Elapsed }
func (s *Simulation) Camera() Camera                     { return s.world.Camera }
func (s *Simulation) Kills() int                         { return s.world.Player.Kills }
func (s *Simulation) SelectedWeapon() int                { return s.world.Player.Weapon }
func (s *Simulation) Mode() component.PlayerMode         { return s.world.Player.Mode }
func (s *Simulation) BuildRotation() int                 { return s.world.Player.BuildRotation }

// BuildPreview returns the candidate wall at the current aim and whether it can be placed
func (s *Simulation) BuildPreview() (vmath.Rect, bool) {
	rect := s.world.BuildPreview()
	return rect, s.world.CanPlace(rect)
}
