package factory

import (
	"github.com/automoto/skpong/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePointer spawns the pointer tracker read by the input system.
func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Pointer.Spawn(ecs)
}
