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

// CreatePaddle creates the collision object mirroring p. Its position is
// kept in sync by the object system.
func CreatePaddle(ecs *ecs.ECS, p *sim.Paddle) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	obj := resolv.NewObject(p.X-p.HalfWidth(), p.Y-p.Height/2, p.Width, p.Height, tags.ResolvPaddle)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	addToSpace(ecs, paddle, obj)

	components.Body.SetValue(paddle, components.BodyData{Body: sim.PaddleBody(), Paddle: p.ID})
	return paddle
}
