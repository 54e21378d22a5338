package systems

import (
	"github.com/automoto/skpong/shared/gamemath"
	"github.com/automoto/skpong/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the ball. The simulation owns velocity; the host
// only moves the ball along it.
func UpdatePhysics(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok || s.State.Round != sim.RoundInPlay {
		return
	}

	b := s.State.Ball
	maxSpeed := s.State.Config().Ball.MaxSpeed
	if maxSpeed > 0 {
		b.Velocity.X = gamemath.ClampSpeed(b.Velocity.X, maxSpeed)
		b.Velocity.Y = gamemath.ClampSpeed(b.Velocity.Y, maxSpeed)
	}
	b.Position = b.Position.Add(b.Velocity.Scale(tickSeconds(s.State)))
}
