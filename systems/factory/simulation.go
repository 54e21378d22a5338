package factory

import (
	"math"

	"github.com/automoto/skpong/archetypes"
	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/sim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation spawns the simulation singleton and every entity that
// mirrors it: collision space, four walls, two paddles and the ball.
func CreateSimulation(ecs *ecs.ECS, state *sim.State, queue *sim.CommandQueue) *donburi.Entry {
	CreateSpace(ecs,
		int(math.Ceil(state.Width)),
		int(math.Ceil(state.Height)),
		16, 16,
	)

	for _, w := range state.Walls {
		CreateWall(ecs, w)
	}
	for _, p := range state.Paddles {
		CreatePaddle(ecs, p)
	}
	CreateBall(ecs, state.Ball)

	simulation := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(simulation, components.SimulationData{
		State:    state,
		Queue:    queue,
		Touching: map[*resolv.Object]bool{},
	})
	return simulation
}
