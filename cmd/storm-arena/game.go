package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/input"
	"github.com/lixenwraith/storm-arena/render"
	"github.com/lixenwraith/storm-arena/status"
)

// fpsSmoothing weights the newest frame in the displayed rate
const fpsSmoothing = 0.1

// game owns the frame loop of one terminal session
type game struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	renderer *render.Renderer
	handler  *input.Handler
	fps      *status.AtomicFloat

	last time.Time
}

// run processes events and frames until the context ends or the player quits
// Each frame samples input, advances the simulation by the real elapsed time and draws
func (g *game) run(ctx context.Context, events <-chan tcell.Event, frames <-chan time.Time) error {
	g.renderer.RenderFrame(g.sim)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				g.renderer.Resize(w, h)
				g.screen.Sync()
			}
			if !g.handler.HandleEvent(ev) {
				return nil
			}

		case now := <-frames:
			g.frame(now)
		}
	}
}

func (g *game) frame(now time.Time) {
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if dt > 0 {
		prev := g.fps.Get()
		inst := 1 / dt
		if prev == 0 {
			g.fps.Set(inst)
		} else {
			g.fps.Set(prev + (inst-prev)*fpsSmoothing)
		}
	}

	g.sim.SetInput(g.handler.Input())
	g.sim.Tick(dt)
	g.renderer.RenderFrame(g.sim)
}
