package systems

import (
	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Install spawns the simulation entities into e and registers the systems
// that run the game rules, in tick order. Input systems that feed the
// simulation must be added before calling Install.
func Install(e *ecs.ECS, state *sim.State, queue *sim.CommandQueue) {
	factory.CreateSimulation(e, state, queue)

	e.AddSystem(WithPauseCheck(UpdateFrame))
	e.AddSystem(WithPauseCheck(UpdateObjects))
	e.AddSystem(WithPauseCheck(UpdatePhysics))
	e.AddSystem(WithPauseCheck(UpdateCollisions))
	e.AddSystem(WithPauseCheck(UpdateObjects))
}

// tickSeconds is the fixed step the host advances per update.
func tickSeconds(state *sim.State) float64 {
	tps := state.Config().Scene.TPS
	if tps <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(tps)
}

func getSimulation(e *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

// State returns the simulation state held by e, or nil.
func State(e *ecs.ECS) *sim.State {
	s, ok := getSimulation(e)
	if !ok {
		return nil
	}
	return s.State
}
