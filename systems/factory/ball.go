package factory

import (
	"github.com/automoto/skpong/archetypes"
	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall creates the collision object mirroring b. The object is the
// ball's bounding box, its circle shape is what contacts are tested with.
func CreateBall(ecs *ecs.ECS, b *sim.Ball) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	size := b.Radius * 2
	obj := resolv.NewObject(b.Position.X-b.Radius, b.Position.Y-b.Radius, size, size, tags.ResolvBall)
	obj.SetShape(resolv.NewCircle(b.Position.X, b.Position.Y, b.Radius))
	addToSpace(ecs, ball, obj)
	SyncBall(obj, b)

	components.Body.SetValue(ball, components.BodyData{Body: sim.BallBody(), Ball: b})
	return ball
}

// SyncBall moves obj to b's position. Object.Update places shapes at the
// object's corner, so the circle is re-centred afterwards.
func SyncBall(obj *resolv.Object, b *sim.Ball) {
	obj.X = b.Position.X - b.Radius
	obj.Y = b.Position.Y - b.Radius
	obj.Update()
	obj.Shape.SetPosition(b.Position.X, b.Position.Y)
}

// DestroyBall removes a ball entity and its collision object.
func DestroyBall(ecs *ecs.ECS, ball *donburi.Entry) {
	obj := components.Object.Get(ball)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	ecs.World.Remove(ball.Entity())
}
