package systems

import "github.com/yohamta/donburi/ecs"

// UpdateFrame applies queued input then runs the simulation tick.
func UpdateFrame(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok {
		return
	}
	if s.Queue != nil {
		s.Queue.Drain(s.State)
	}
	s.State.Update(tickSeconds(s.State))
}
