package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// recordingSystem captures actions delivered by the simulation
type recordingSystem struct {
	actions []engine.Action
}

func (s *recordingSystem) Name() string      { return "recorder" }
func (s *recordingSystem) Update(dt float64) {}
func (s *recordingSystem) HandleAction(a engine.Action) bool {
	s.actions = append(s.actions, a)
	return true
}

// offsetProjector maps cell (c, r) to world (c*10, r*10)
type offsetProjector struct{}

func (offsetProjector) ToWorld(col, row int) (float64, float64) {
	return float64(col * 10), float64(row * 10)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestHandler(t *testing.T) (*Handler, *recordingSystem, *fakeClock, *engine.Simulation) {
	t.Helper()
	cfg := engine.DefaultWorldConfig()
	cfg.BotCount = 0
	w := engine.NewWorld(cfg, fixedRand(0.5), nil, nil)
	// Keep the match running
	w.Bots = append(w.Bots, &component.Bot{X: 100, Y: 100, Size: 20, Health: 100})

	sim := engine.NewSimulation(w)
	rec := &recordingSystem{}
	sim.AddSystem(rec)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHandler(sim, offsetProjector{}, nil)
	h.now = clock.now
	return h, rec, clock, sim
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestExitKeys(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	if h.HandleEvent(key(tcell.KeyEscape)) {
		t.Error("Expected Escape to exit")
	}
	if h.HandleEvent(key(tcell.KeyCtrlC)) {
		t.Error("Expected Ctrl-C to exit")
	}
	if !h.HandleEvent(runeKey('w')) {
		t.Error("Expected movement to keep running")
	}
}

func TestDirectionLatch(t *testing.T) {
	h, _, clock, _ := newTestHandler(t)

	h.HandleEvent(runeKey('w'))
	h.HandleEvent(key(tcell.KeyRight))

	in := h.Input()
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Errorf("Expected up+right held, got %+v", in)
	}

	clock.t = clock.t.Add(parameter.KeyLatch - time.Millisecond)
	if in := h.Input(); !in.Up {
		t.Error("Expected direction held inside the latch window")
	}

	clock.t = clock.t.Add(2 * time.Millisecond)
	if in := h.Input(); in.Up || in.Right {
		t.Errorf("Expected directions released after the latch, got %+v", in)
	}
}

func TestActionKeys(t *testing.T) {
	h, rec, _, _ := newTestHandler(t)

	h.HandleEvent(key(tcell.KeyTab))
	h.HandleEvent(runeKey('r'))
	h.HandleEvent(runeKey('q'))
	h.HandleEvent(runeKey('e'))
	h.HandleEvent(runeKey('3'))

	want := []engine.Action{
		{Kind: engine.ActionToggleMode},
		{Kind: engine.ActionToggleRotation},
		{Kind: engine.ActionPlaceWall},
		{Kind: engine.ActionUseMedkit},
		engine.SelectWeapon(2),
	}
	if len(rec.actions) != len(want) {
		t.Fatalf("Expected %d actions, got %d", len(want), len(rec.actions))
	}
	for i, a := range rec.actions {
		if a != want[i] {
			t.Errorf("Action %d: expected %v, got %v", i, want[i], a)
		}
	}
}

func TestRestartKeys(t *testing.T) {
	h, rec, _, sim := newTestHandler(t)

	sim.Player().Health = 0
	sim.Tick(0.01)
	if sim.State() != engine.StateLost {
		t.Fatalf("Expected lost, got %s", sim.State())
	}

	h.HandleEvent(runeKey('r'))
	if sim.State() != engine.StateRunning {
		t.Errorf("Expected r to restart a finished match, got %s", sim.State())
	}
	if len(rec.actions) != 0 {
		t.Errorf("Expected restart to bypass handlers, got %d actions", len(rec.actions))
	}

	sim.Player().Health = 0
	sim.Tick(0.01)
	h.HandleEvent(key(tcell.KeyEnter))
	if sim.State() != engine.StateRunning {
		t.Errorf("Expected Enter to restart, got %s", sim.State())
	}
}

func TestMouseAimAndFire(t *testing.T) {
	h, _, _, sim := newTestHandler(t)

	in := h.Input()
	p := sim.Player()
	if in.AimX != p.X+parameter.AimDefaultOffset || in.AimY != p.Y {
		t.Errorf("Expected default aim ahead of player, got (%f,%f)", in.AimX, in.AimY)
	}

	h.HandleEvent(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	in = h.Input()
	if in.AimX != 120 || in.AimY != 70 {
		t.Errorf("Expected aim (120,70), got (%f,%f)", in.AimX, in.AimY)
	}
	if !in.Fire {
		t.Error("Expected fire while button held")
	}

	h.HandleEvent(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	if h.Input().Fire {
		t.Error("Expected fire released with the button")
	}
}

func TestStickyFire(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	h.HandleEvent(runeKey(' '))
	if !h.Input().Fire || !h.StickyFire() {
		t.Error("Expected space to latch fire on")
	}

	h.HandleEvent(runeKey(' '))
	if h.Input().Fire {
		t.Error("Expected second space to release fire")
	}
}

func TestCustomKeyTable(t *testing.T) {
	h, rec, _, _ := newTestHandler(t)

	override, err := ParseKeyBindings(map[string]string{
		"f": "place_wall",
		"q": "none",
	})
	if err != nil {
		t.Fatalf("Expected bindings to parse, got %v", err)
	}
	h.keys = MergeKeyTable(DefaultKeyTable(), override)

	h.HandleEvent(runeKey('q'))
	if len(rec.actions) != 0 {
		t.Fatalf("Expected unbound key to do nothing, got %v", rec.actions)
	}

	h.HandleEvent(runeKey('f'))
	if len(rec.actions) != 1 || rec.actions[0].Kind != engine.ActionPlaceWall {
		t.Errorf("Expected f to place a wall, got %v", rec.actions)
	}
}
