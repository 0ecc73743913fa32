package system

import (
	"testing"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
)

// constRand always rolls the same value
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// newTestWorld returns an empty arena with the player at map center
func newTestWorld(t *testing.T, rng engine.Rand) *engine.World {
	t.Helper()
	cfg := engine.DefaultWorldConfig()
	cfg.BotCount = 0
	return engine.NewWorld(cfg, rng, nil, nil)
}

// idleBot returns a full-health bot whose timers will not fire during a short test
func idleBot(x, y float64) *component.Bot {
	return &component.Bot{
		X:          x,
		Y:          y,
		Size:       20,
		Speed:      100,
		Health:     100,
		MaxHealth:  100,
		ShootTimer: 10,
		BuildTimer: 10,
		StrafeDir:  1,
	}
}
