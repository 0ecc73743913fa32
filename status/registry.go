package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyTicks         = "sim.ticks"
	KeyBots          = "sim.bots"
	KeyWalls         = "sim.walls"
	KeyPlayerBullets = "sim.bullets.player"
	KeyBotBullets    = "sim.bullets.bot"
	KeyParticles     = "sim.particles"
	KeyStep          = "sim.step"
	KeyFPS           = "host.fps"
)

// Registry is the central metrics facade
// Writers cache pointers once; per-frame loops write directly to atomics so a
// concurrent renderer can read without touching world state
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every current value, keyed by metric name
// Used for the shutdown summary; frame loops read the atomics directly
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}
