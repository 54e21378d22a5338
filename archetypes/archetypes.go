package archetypes

import (
	"github.com/automoto/skpong/components"
	cfg "github.com/automoto/skpong/config"
	"github.com/automoto/skpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Object,
		components.Body,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Object,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Simulation = newArchetype(
		tags.Simulation,
		components.Simulation,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
