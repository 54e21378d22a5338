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

// CreateWall creates the static collision object for one boundary.
func CreateWall(ecs *ecs.ECS, w sim.Wall) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	width := w.Max.X - w.Min.X
	height := w.Max.Y - w.Min.Y
	tag := tags.ResolvSideWall
	if w.Kind.Category() == sim.CategoryEndWall {
		tag = tags.ResolvEndWall
	}

	obj := resolv.NewObject(w.Min.X, w.Min.Y, width, height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	addToSpace(ecs, wall, obj)

	components.Body.SetValue(wall, components.BodyData{Body: sim.WallBody(w.Kind)})
	return wall
}
