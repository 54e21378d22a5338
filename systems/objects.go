package systems

import (
	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/systems/factory"
	"github.com/automoto/skpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors simulation positions into the collision space and
// replaces the ball entity when the simulation recreated the ball.
func UpdateObjects(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok {
		return
	}
	state := s.State

	var stale []*donburi.Entry
	found := false
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.Ball != state.Ball {
			stale = append(stale, entry)
			return
		}
		found = true
		factory.SyncBall(components.Object.Get(entry).Object, state.Ball)
	})

	for _, entry := range stale {
		factory.DestroyBall(e, entry)
	}
	if !found {
		factory.CreateBall(e, state.Ball)
		// A fresh ball touches nothing yet.
		for obj := range s.Touching {
			delete(s.Touching, obj)
		}
	}

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		p := state.Paddle(body.Paddle)
		obj := components.Object.Get(entry)
		obj.X = p.X - p.HalfWidth()
		obj.Y = p.Y - p.Height/2
		obj.Update()
	})
}
