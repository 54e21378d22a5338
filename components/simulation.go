package components

import (
	"github.com/automoto/skpong/sim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SimulationData is the singleton holding the game rules state.
// Only one simulation exists per world.
type SimulationData struct {
	State *sim.State
	Queue *sim.CommandQueue

	// Objects the ball overlapped last tick, so a resting contact is
	// reported once instead of every frame.
	Touching map[*resolv.Object]bool
}

var Simulation = donburi.NewComponentType[SimulationData]()
