package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/storm-arena/component"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// recordingSystem logs its name into a shared trace on every update
type recordingSystem struct {
	name    string
	trace   *[]string
	lastDt  float64
	resets  int
	actions []Action
}

func (s *recordingSystem) Name() string { return s.name }

func (s *recordingSystem) Update(dt float64) {
	*s.trace = append(*s.trace, s.name)
	s.lastDt = dt
}

func (s *recordingSystem) Reset() { s.resets++ }

func (s *recordingSystem) HandleAction(a Action) bool {
	s.actions = append(s.actions, a)
	return true
}

// plainSystem has no optional roles
type plainSystem struct{ name string }

func (s *plainSystem) Name() string      { return s.name }
func (s *plainSystem) Update(dt float64) {}

func newTestSim(t *testing.T) (*Simulation, *[]string, *recordingSystem) {
	t.Helper()
	cfg := DefaultWorldConfig()
	cfg.BotCount = 0
	w := NewWorld(cfg, fixedRand(0.25), nil, nil)
	// Keep the match running with a bot nothing touches
	w.Bots = append(w.Bots, &component.Bot{X: 100, Y: 100, Size: 20, Health: 100})

	trace := &[]string{}
	sim := NewSimulation(w)
	first := &recordingSystem{name: "first", trace: trace}
	sim.AddSystem(first)
	sim.AddSystem(&recordingSystem{name: "second", trace: trace})
	sim.AddSystem(&plainSystem{name: "plain"})
	sim.AddSystem(&recordingSystem{name: "third", trace: trace})
	return sim, trace, first
}

func TestTickRunsSystemsInOrder(t *testing.T) {
	sim, trace, _ := newTestSim(t)

	sim.Tick(0.016)
	sim.Tick(0.016)

	want := []string{"first", "second", "third", "first", "second", "third"}
	if len(*trace) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(*trace))
	}
	for i, name := range *trace {
		if name != want[i] {
			t.Errorf("Update %d: expected %s, got %s", i, want[i], name)
		}
	}
}

func TestTickClampsStep(t *testing.T) {
	sim, _, first := newTestSim(t)

	sim.Tick(5)
	if first.lastDt != DefaultWorldConfig().MaxStep {
		t.Errorf("Expected dt capped at %f, got %f", DefaultWorldConfig().MaxStep, first.lastDt)
	}
	if sim.Elapsed() != DefaultWorldConfig().MaxStep {
		t.Errorf("Expected elapsed %f, got %f", DefaultWorldConfig().MaxStep, sim.Elapsed())
	}

	sim.Tick(-1)
	if first.lastDt != 0 {
		t.Errorf("Expected negative dt treated as 0, got %f", first.lastDt)
	}

	sim.Tick(math.NaN())
	if first.lastDt != 0 {
		t.Errorf("Expected NaN dt treated as 0, got %f", first.lastDt)
	}
	if sim.Elapsed() != DefaultWorldConfig().MaxStep {
		t.Errorf("Expected elapsed unchanged by empty ticks, got %f", sim.Elapsed())
	}
}

func TestTickDecaysTimers(t *testing.T) {
	sim, _, _ := newTestSim(t)
	p := sim.Player()
	p.ShootCooldown = 0.05
	p.BuildCooldown = 0.2
	p.DamageFlash = 0.5

	sim.Tick(0.1)

	if p.ShootCooldown != 0 {
		t.Errorf("Expected shoot cooldown floored at 0, got %f", p.ShootCooldown)
	}
	if math.Abs(p.BuildCooldown-0.1) > 1e-9 {
		t.Errorf("Expected build cooldown 0.1, got %f", p.BuildCooldown)
	}
	if math.Abs(p.DamageFlash-0.2) > 1e-9 {
		t.Errorf("Expected flash 0.2, got %f", p.DamageFlash)
	}
}

func TestStartResetsRoles(t *testing.T) {
	sim, _, first := newTestSim(t)

	sim.Start()
	if first.resets != 1 {
		t.Errorf("Expected 1 reset, got %d", first.resets)
	}

	sim.Reset()
	if first.resets != 2 {
		t.Errorf("Expected 2 resets, got %d", first.resets)
	}
	// fixedRand(0.25) puts the player a quarter of the way in
	p := sim.Player()
	r := p.Radius
	want := r + 0.25*(DefaultWorldConfig().Width-2*r)
	if p.X != want || p.Y != want {
		t.Errorf("Expected player at (%f,%f), got (%f,%f)", want, want, p.X, p.Y)
	}
}

func TestActionsFanOut(t *testing.T) {
	sim, _, first := newTestSim(t)

	if !sim.HandleAction(SelectWeapon(2)) {
		t.Error("Expected action handled")
	}
	if len(first.actions) != 1 || first.actions[0].Index != 2 {
		t.Errorf("Expected weapon action delivered, got %+v", first.actions)
	}
}

func TestTerminalGatesActions(t *testing.T) {
	sim, trace, first := newTestSim(t)
	sim.Player().Health = 0

	sim.Tick(0.016)
	if sim.State() != StateLost {
		t.Fatalf("Expected lost, got %s", sim.State())
	}

	n := len(*trace)
	sim.Tick(0.016)
	if len(*trace) != n {
		t.Error("Expected no system updates after the match ended")
	}

	if sim.HandleAction(Action{Kind: ActionToggleMode}) {
		t.Error("Expected action rejected after the match ended")
	}
	if len(first.actions) != 0 {
		t.Errorf("Expected no actions delivered, got %d", len(first.actions))
	}

	if !sim.HandleAction(Action{Kind: ActionRestart}) {
		t.Error("Expected restart accepted")
	}
	if sim.State() != StateRunning {
		t.Errorf("Expected running after restart, got %s", sim.State())
	}
}

func TestWonWhenNoBots(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.World().Bots = nil

	sim.Tick(0.016)

	if sim.State() != StateWon {
		t.Errorf("Expected won, got %s", sim.State())
	}
}

func TestTickPublishesMetrics(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.Tick(0.02)
	sim.Tick(0.02)

	m := sim.World().Metrics
	if got := m.Ints.Get("sim.ticks").Load(); got != 2 {
		t.Errorf("Expected 2 ticks, got %d", got)
	}
	if got := m.Ints.Get("sim.bots").Load(); got != 1 {
		t.Errorf("Expected 1 bot published, got %d", got)
	}
	if got := m.Floats.Get("sim.step").Get(); got != 0.02 {
		t.Errorf("Expected step 0.02, got %f", got)
	}
}
