// Package input turns terminal events into simulation input and actions
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
)

// Projector maps a screen cell to world coordinates
type Projector interface {
	ToWorld(col, row int) (float64, float64)
}

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Handler translates tcell events for one simulation
// Directions stay held for a latch window after each key event since
// terminals never report key releases
type Handler struct {
	sim  *engine.Simulation
	proj Projector
	keys *KeyTable

	latch time.Duration
	now   func() time.Time
	held  [dirCount]time.Time

	mouseCol, mouseRow int
	hasMouse           bool
	mouseFire          bool
	stickyFire         bool
}

// NewHandler binds a handler to a simulation, nil keys selects DefaultKeyTable
func NewHandler(sim *engine.Simulation, proj Projector, keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{
		sim:   sim,
		proj:  proj,
		keys:  keys,
		latch: parameter.KeyLatch,
		now:   time.Now,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.dispatch(h.keys.Lookup(ev))
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	}
	return true
}

func (h *Handler) dispatch(intent Intent) bool {
	if d, ok := intent.direction(); ok {
		h.press(d)
		return true
	}
	if slot, ok := intent.weapon(); ok {
		h.sim.HandleAction(engine.SelectWeapon(slot))
		return true
	}

	switch intent {
	case IntentQuit:
		return false
	case IntentToggleFire:
		h.stickyFire = !h.stickyFire
	case IntentToggleMode:
		h.sim.HandleAction(engine.Action{Kind: engine.ActionToggleMode})
	case IntentRotate:
		// Doubles as restart once the match is over
		if h.sim.State().Terminal() {
			h.sim.HandleAction(engine.Action{Kind: engine.ActionRestart})
		} else {
			h.sim.HandleAction(engine.Action{Kind: engine.ActionToggleRotation})
		}
	case IntentPlaceWall:
		h.sim.HandleAction(engine.Action{Kind: engine.ActionPlaceWall})
	case IntentUseMedkit:
		h.sim.HandleAction(engine.Action{Kind: engine.ActionUseMedkit})
	case IntentRestart:
		h.sim.HandleAction(engine.Action{Kind: engine.ActionRestart})
	}
	return true
}

func (h *Handler) handleMouseEvent(ev *tcell.EventMouse) {
	h.mouseCol, h.mouseRow = ev.Position()
	h.hasMouse = true
	h.mouseFire = ev.Buttons()&tcell.Button1 != 0
}

func (h *Handler) press(d direction) {
	h.held[d] = h.now()
}

func (h *Handler) isHeld(d direction, now time.Time) bool {
	t := h.held[d]
	return !t.IsZero() && now.Sub(t) < h.latch
}

// Input samples the current control state
// The aim is re-projected every call so it follows the moving camera
func (h *Handler) Input() engine.Input {
	now := h.now()
	in := engine.Input{
		Up:    h.isHeld(dirUp, now),
		Down:  h.isHeld(dirDown, now),
		Left:  h.isHeld(dirLeft, now),
		Right: h.isHeld(dirRight, now),
		Fire:  h.mouseFire || h.stickyFire,
	}

	if h.hasMouse && h.proj != nil {
		in.AimX, in.AimY = h.proj.ToWorld(h.mouseCol, h.mouseRow)
	} else {
		p := h.sim.Player()
		in.AimX, in.AimY = p.X+parameter.AimDefaultOffset, p.Y
	}
	return in
}

// StickyFire reports whether space-bar auto fire is on
func (h *Handler) StickyFire() bool { return h.stickyFire }
