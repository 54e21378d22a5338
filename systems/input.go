package systems

import (
	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePointer turns mouse and touch input into pointer events for the
// simulation. Must run BEFORE UpdateFrame in the system order.
func UpdatePointer(e *ecs.ECS) {
	state := State(e)
	if state == nil {
		return
	}
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)

	send := func(phase sim.PointerPhase, x, y int) {
		p.LastX, p.LastY = x, y
		state.HandlePointer(sim.PointerEvent{Phase: phase, Position: toScene(state, x, y)})
	}

	if !p.Active {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		switch {
		case len(touchIDs) > 0:
			p.Active, p.IsTouch, p.TouchID = true, true, touchIDs[0]
			x, y := ebiten.TouchPosition(p.TouchID)
			send(sim.PointerDown, x, y)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			p.Active, p.IsTouch = true, false
			x, y := ebiten.CursorPosition()
			send(sim.PointerDown, x, y)
		}
	} else if p.IsTouch {
		if inpututil.IsTouchJustReleased(p.TouchID) {
			x, y := inpututil.TouchPositionInPreviousTick(p.TouchID)
			send(sim.PointerUp, x, y)
			p.Active = false
		} else if x, y := ebiten.TouchPosition(p.TouchID); x != p.LastX || y != p.LastY {
			send(sim.PointerMoved, x, y)
		}
	} else {
		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			send(sim.PointerUp, x, y)
			p.Active = false
		} else if x != p.LastX || y != p.LastY {
			send(sim.PointerMoved, x, y)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		state.Serve()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		state.Reset()
	}
}

// toScene converts screen pixels (y down) to scene units (y up).
func toScene(state *sim.State, x, y int) sim.Vector {
	return sim.Vector{X: float64(x), Y: state.Height - float64(y)}
}
