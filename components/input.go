package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerData tracks the single pointer gesture driving the bottom paddle.
// A gesture comes from either the left mouse button or the first touch.
type PointerData struct {
	Active  bool
	IsTouch bool
	TouchID ebiten.TouchID
	LastX   int // Screen coordinates of the previous sample
	LastY   int
}

var Pointer = donburi.NewComponentType[PointerData]()
