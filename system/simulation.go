package system

import "github.com/lixenwraith/storm-arena/engine"

// NewSimulation wires the stock systems in tick order:
// player, storm, bullets, bots, effects
// The caller invokes Start to spawn the first population
func NewSimulation(world *engine.World) *engine.Simulation {
	sim := engine.NewSimulation(world)
	effects := NewEffectSystem(world)

	sim.AddSystem(NewPlayerSystem(world, effects))
	sim.AddSystem(NewStormSystem(world))
	sim.AddSystem(NewBulletSystem(world, effects))
	sim.AddSystem(NewBotSystem(world, effects))
	sim.AddSystem(effects)
	return sim
}
