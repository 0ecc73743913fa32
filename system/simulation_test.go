package system

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

func newTestSimulation(t *testing.T, bots int, seed uint64) *engine.Simulation {
	t.Helper()
	cfg := engine.DefaultWorldConfig()
	cfg.BotCount = bots
	w := engine.NewWorld(cfg, engine.NewRand(seed), nil, nil)
	sim := NewSimulation(w)
	sim.Start()
	return sim
}

func TestSystemOrder(t *testing.T) {
	sim := newTestSimulation(t, 0, 1)

	want := []string{"player", "storm", "bullet", "bot", "effect"}
	got := sim.Systems()
	if len(got) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(got))
	}
	for i, sys := range got {
		if sys.Name() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], sys.Name())
		}
	}
}

func TestStartSpawnsBots(t *testing.T) {
	sim := newTestSimulation(t, parameter.BotCount, 7)

	if len(sim.Bots()) != parameter.BotCount {
		t.Errorf("Expected %d bots, got %d", parameter.BotCount, len(sim.Bots()))
	}
	if sim.State() != engine.StateRunning {
		t.Errorf("Expected running, got %s", sim.State())
	}
}

func TestRestartRestoresDefaults(t *testing.T) {
	sim := newTestSimulation(t, 12, 3)
	w := sim.World()

	firstMatch := w.MatchID
	p := w.Player
	p.Kills = 9
	p.Health = 5
	p.Materials = 3
	p.Medkits = 0
	p.Weapon = 2
	p.Mode = component.ModeBuild
	w.Bots = w.Bots[:2]
	w.Zone.Radius = 700
	sim.Tick(0.05)

	if !sim.HandleAction(engine.Action{Kind: engine.ActionRestart}) {
		t.Fatal("Expected restart to be handled")
	}

	p = sim.Player()
	if p.Kills != 0 || p.Health != parameter.PlayerMaxHealth ||
		p.Materials != parameter.PlayerStartMaterials || p.Medkits != parameter.PlayerStartMedkits {
		t.Errorf("Expected stock player after restart, got %+v", *p)
	}
	if p.Weapon != 0 || p.Mode != component.ModeCombat {
		t.Errorf("Expected pistol in combat mode, got weapon %d mode %s", p.Weapon, p.Mode)
	}
	if len(sim.Bots()) != 12 {
		t.Errorf("Expected 12 bots, got %d", len(sim.Bots()))
	}
	if len(sim.Walls()) != 0 || len(sim.PlayerBullets()) != 0 || len(sim.BotBullets()) != 0 || len(sim.Particles()) != 0 {
		t.Error("Expected every collection cleared on restart")
	}
	if sim.Zone().Radius != sim.Zone().InitialRadius {
		t.Errorf("Expected zone radius restored, got %f", sim.Zone().Radius)
	}
	if sim.Elapsed() != 0 {
		t.Errorf("Expected clock reset, got %f", sim.Elapsed())
	}
	if sim.World().MatchID == firstMatch {
		t.Error("Expected a fresh match id")
	}
}

func TestWonWhenBotsCleared(t *testing.T) {
	sim := newTestSimulation(t, 0, 1)

	sim.Tick(0.016)

	if sim.State() != engine.StateWon {
		t.Errorf("Expected won, got %s", sim.State())
	}
}

func TestLostCheckedBeforeWon(t *testing.T) {
	sim := newTestSimulation(t, 0, 1)
	sim.Player().Health = 0

	sim.Tick(0.016)

	if sim.State() != engine.StateLost {
		t.Errorf("Expected lost, got %s", sim.State())
	}
}

func TestKillingLastBotWins(t *testing.T) {
	sim := newTestSimulation(t, 1, 5)
	w := sim.World()

	bot := w.Bots[0]
	w.PlayerBullets = append(w.PlayerBullets, &component.Bullet{X: bot.X, Y: bot.Y, Damage: 500})
	sim.Tick(0.001)

	if sim.State() != engine.StateWon {
		t.Errorf("Expected won, got %s", sim.State())
	}
	if sim.Kills() != 1 {
		t.Errorf("Expected 1 kill, got %d", sim.Kills())
	}
}

func TestTerminalMatchFrozen(t *testing.T) {
	sim := newTestSimulation(t, 0, 1)
	sim.Tick(0.016)
	elapsed := sim.Elapsed()

	sim.Tick(0.05)
	if sim.Elapsed() != elapsed {
		t.Errorf("Expected clock frozen after the match ended, got %f", sim.Elapsed())
	}
	if sim.HandleAction(engine.Action{Kind: engine.ActionToggleMode}) {
		t.Error("Expected actions ignored after the match ended")
	}
	if !sim.HandleAction(engine.Action{Kind: engine.ActionRestart}) {
		t.Error("Expected restart to be honored after the match ended")
	}
	if sim.State() != engine.StateRunning {
		t.Errorf("Expected running after restart, got %s", sim.State())
	}
}

func TestDamageFlashDecays(t *testing.T) {
	sim := newTestSimulation(t, 1, 2)
	w := sim.World()
	w.Bots[0].ShootTimer = 100
	w.Bots[0].BuildTimer = 100
	w.Player.DamageFlash = 1

	sim.Tick(0.1)

	if math.Abs(w.Player.DamageFlash-0.7) > 1e-9 {
		t.Errorf("Expected flash 0.7, got %f", w.Player.DamageFlash)
	}
}

func TestBuildPreviewAccessor(t *testing.T) {
	sim := newTestSimulation(t, 0, 1)
	p := sim.Player()
	sim.SetInput(engine.Input{AimX: p.X, AimY: p.Y + 100})

	rect, ok := sim.BuildPreview()
	if !ok {
		t.Error("Expected preview placeable on an empty map")
	}
	if rect.W != parameter.BuildThickness || rect.H != parameter.BuildLength {
		t.Errorf("Expected vertical preview, got %fx%f", rect.W, rect.H)
	}

	sim.HandleAction(engine.Action{Kind: engine.ActionToggleRotation})
	rect, _ = sim.BuildPreview()
	if rect.W != parameter.BuildLength || rect.H != parameter.BuildThickness {
		t.Errorf("Expected horizontal preview, got %fx%f", rect.W, rect.H)
	}
}

// Positions stay inside the map and the zone only shrinks, for any input stream
func TestSimulationInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := engine.DefaultWorldConfig()
		cfg.BotCount = rapid.IntRange(1, 8).Draw(rt, "bots")
		w := engine.NewWorld(cfg, engine.NewRand(rapid.Uint64Min(1).Draw(rt, "seed")), nil, nil)
		sim := NewSimulation(w)
		sim.Start()

		// Pull everything close so bots engage
		for i, b := range w.Bots {
			b.X = w.Player.X + float64(i*40) - 150
			b.Y = w.Player.Y + 120
		}

		ticks := rapid.IntRange(1, 60).Draw(rt, "ticks")
		prevRadius := w.Zone.Radius
		for i := 0; i < ticks; i++ {
			sim.SetInput(engine.Input{
				Up:    rapid.Bool().Draw(rt, "up"),
				Down:  rapid.Bool().Draw(rt, "down"),
				Left:  rapid.Bool().Draw(rt, "left"),
				Right: rapid.Bool().Draw(rt, "right"),
				Fire:  rapid.Bool().Draw(rt, "fire"),
				AimX:  rapid.Float64Range(0, cfg.Width).Draw(rt, "aimx"),
				AimY:  rapid.Float64Range(0, cfg.Height).Draw(rt, "aimy"),
			})
			switch rapid.IntRange(0, 5).Draw(rt, "action") {
			case 0:
				sim.HandleAction(engine.Action{Kind: engine.ActionToggleMode})
			case 1:
				sim.HandleAction(engine.Action{Kind: engine.ActionPlaceWall})
			case 2:
				sim.HandleAction(engine.SelectWeapon(rapid.IntRange(-1, 4).Draw(rt, "weapon")))
			}

			sim.Tick(rapid.Float64Range(0, 0.5).Draw(rt, "dt"))

			p := sim.Player()
			if p.X < p.Radius || p.X > cfg.Width-p.Radius || p.Y < p.Radius || p.Y > cfg.Height-p.Radius {
				rt.Fatalf("player out of bounds at (%f,%f)", p.X, p.Y)
			}
			for _, b := range sim.Bots() {
				h := b.HitRadius()
				if b.X < h || b.X > cfg.Width-h || b.Y < h || b.Y > cfg.Height-h {
					rt.Fatalf("bot out of bounds at (%f,%f)", b.X, b.Y)
				}
			}

			z := sim.Zone()
			if z.Radius > prevRadius || z.Radius < z.TargetRadius {
				rt.Fatalf("zone radius %f after %f (target %f)", z.Radius, prevRadius, z.TargetRadius)
			}
			prevRadius = z.Radius

			if p.Health < 0 || p.Materials > p.MaxMaterials {
				rt.Fatalf("player stats out of range: health %f materials %d", p.Health, p.Materials)
			}
			if p.Weapon < 0 || p.Weapon >= parameter.WeaponCount {
				rt.Fatalf("weapon index %d out of range", p.Weapon)
			}
		}
	})
}
