package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/vmath"
)

// Reset repopulates the arena with the configured bot count
func (s *BotSystem) Reset() {
	for i := 0; i < s.world.Config.BotCount; i++ {
		s.Spawn()
	}
}

// Spawn adds one bot at a random point away from the player
// Candidates too close to the player are redrawn a bounded number of times,
// after which the last candidate is taken as is
func (s *BotSystem) Spawn() *component.Bot {
	w := s.world
	p := w.Player
	m := parameter.BotSpawnMargin

	var x, y float64
	attempt := 0
	for {
		x = engine.RandRange(w.Rand, m, w.Config.Width-m)
		y = engine.RandRange(w.Rand, m, w.Config.Height-m)
		if vmath.Distance(x, y, p.X, p.Y) > parameter.BotSpawnMinPlayerDist {
			break
		}
		if attempt >= parameter.BotSpawnMaxRetries {
			w.Log.WithFields(logrus.Fields{
				"x":        x,
				"y":        y,
				"attempts": attempt + 1,
			}).Debug("bot spawned near player")
			break
		}
		attempt++
	}

	b := &component.Bot{
		X:          x,
		Y:          y,
		Size:       parameter.BotSize,
		Speed:      parameter.BotSpeed,
		Health:     parameter.BotMaxHealth,
		MaxHealth:  parameter.BotMaxHealth,
		ShootTimer: engine.RandRange(w.Rand, parameter.BotShootTimerInitMin, parameter.BotShootTimerInitMax),
		BuildTimer: engine.RandRange(w.Rand, parameter.BotBuildTimerInitMin, parameter.BotBuildTimerInitMax),
		StrafeDir:  engine.RandSign(w.Rand),
	}
	w.Bots = append(w.Bots, b)
	s.statSpawned.Add(1)
	return b
}
