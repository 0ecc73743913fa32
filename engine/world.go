package engine

import (
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/status"
	"github.com/lixenwraith/storm-arena/vmath"
)

// WorldConfig holds the match-independent arena settings
type WorldConfig struct {
	Width, Height         float64
	ViewWidth, ViewHeight float64

	// BotCount is the population spawned by every reset
	BotCount int

	// MaxStep bounds a single tick in seconds
	MaxStep float64
}

// DefaultWorldConfig returns the stock arena settings
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Width:      parameter.MapWidth,
		Height:     parameter.MapHeight,
		ViewWidth:  parameter.ViewWidth,
		ViewHeight: parameter.ViewHeight,
		BotCount:   parameter.BotCount,
		MaxStep:    parameter.MaxStep,
	}
}

// Camera is the top-left corner of the viewport in world space
type Camera struct {
	X, Y float64
	W, H float64
}

// World is the single aggregate holding every piece of match state
// Only the simulation goroutine may touch it
type World struct {
	Config WorldConfig

	Player        *component.Player
	Bots          []*component.Bot
	Walls         []*component.Wall
	PlayerBullets []*component.Bullet
	BotBullets    []*component.Bullet
	Particles     []*component.Particle

	Zone component.SafeZone

	// Elapsed is simulated seconds since the match started
	Elapsed float64

	State  MatchState
	Input  Input
	Camera Camera

	MatchID string

	Rand    Rand
	Log     logrus.FieldLogger
	Metrics *status.Registry

	baseLog logrus.FieldLogger
}

// NewWorld creates a world with the player at map center and no bots
// A nil logger discards output; a nil registry allocates a private one
func NewWorld(cfg WorldConfig, rng Rand, log logrus.FieldLogger, metrics *status.Registry) *World {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	w := &World{
		Config:  cfg,
		Rand:    rng,
		Log:     log,
		Metrics: metrics,
		baseLog: log,
	}
	w.resetEntities(cfg.Width/2, cfg.Height/2)
	return w
}

// resetEntities clears every collection and restores player and zone defaults
func (w *World) resetEntities(px, py float64) {
	w.Player = &component.Player{
		X:            px,
		Y:            py,
		Speed:        parameter.PlayerSpeed,
		Radius:       parameter.PlayerRadius,
		Health:       parameter.PlayerMaxHealth,
		MaxHealth:    parameter.PlayerMaxHealth,
		Materials:    parameter.PlayerStartMaterials,
		MaxMaterials: parameter.PlayerMaxMaterials,
		Medkits:      parameter.PlayerStartMedkits,
		Mode:         component.ModeCombat,
	}

	w.Bots = w.Bots[:0]
	w.Walls = w.Walls[:0]
	w.PlayerBullets = w.PlayerBullets[:0]
	w.BotBullets = w.BotBullets[:0]
	w.Particles = w.Particles[:0]

	// Maps narrower than twice the target start inside it; the zone never grows
	initial := w.Config.Width / 2
	w.Zone = component.SafeZone{
		X:             w.Config.Width / 2,
		Y:             w.Config.Height / 2,
		Radius:        initial,
		InitialRadius: initial,
		TargetRadius:  min(parameter.StormTargetRadius, initial),
		ShrinkRate:    parameter.StormShrinkRate,
		Damage:        parameter.StormDamage,
	}

	w.Elapsed = 0
	w.State = StateRunning
	w.Input = Input{}
	w.MatchID = uuid.NewString()
	w.Log = w.baseLog.WithField("match", w.MatchID)
	w.updateCamera()
}

// ClampToBounds keeps a point inside the map inset by r on every side
func (w *World) ClampToBounds(x, y, r float64) (float64, float64) {
	return vmath.Clamp(x, r, w.Config.Width-r), vmath.Clamp(y, r, w.Config.Height-r)
}

// InBounds reports whether the point is inside the closed map rectangle
func (w *World) InBounds(x, y float64) bool {
	return x >= 0 && x <= w.Config.Width && y >= 0 && y <= w.Config.Height
}

// updateCamera centers the viewport on the player, kept inside the map
func (w *World) updateCamera() {
	vw, vh := w.Config.ViewWidth, w.Config.ViewHeight
	w.Camera = Camera{
		X: vmath.Clamp(w.Player.X-vw/2, 0, math.Max(0, w.Config.Width-vw)),
		Y: vmath.Clamp(w.Player.Y-vh/2, 0, math.Max(0, w.Config.Height-vh)),
		W: vw,
		H: vh,
	}
}

// BuildPreview returns the wall the player would place at the current aim
func (w *World) BuildPreview() vmath.Rect {
	p := w.Player
	a := math.Atan2(w.Input.AimY-p.Y, w.Input.AimX-p.X)

	bw, bh := parameter.BuildThickness, parameter.BuildLength
	if p.BuildRotation == 1 {
		bw, bh = bh, bw
	}

	return vmath.Rect{
		X: p.X + math.Cos(a)*parameter.BuildReach - bw/2,
		Y: p.Y + math.Sin(a)*parameter.BuildReach - bh/2,
		W: bw,
		H: bh,
	}
}
