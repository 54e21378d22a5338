package sim

import (
	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/shared/gamemath"
)

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMoved
	PointerUp
)

// PointerEvent is a pointer or touch sample in scene coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position Vector
}

// MappingPolicy turns pointer samples into a paddle x position.
type MappingPolicy interface {
	// Begin marks the start of a gesture.
	Begin()
	// Map returns the new paddle x given its current x and the pointer x.
	Map(paddleX, pointerX, minX, maxX float64) float64
}

// NewMappingPolicy returns the policy selected by m.
func NewMappingPolicy(m config.MappingPolicy) MappingPolicy {
	if m == config.MappingDelta {
		return &DeltaMapping{}
	}
	return AbsoluteMapping{}
}

// AbsoluteMapping places the paddle under the pointer, within bounds.
type AbsoluteMapping struct{}

func (AbsoluteMapping) Begin() {}

func (AbsoluteMapping) Map(_, pointerX, minX, maxX float64) float64 {
	return gamemath.ClampPaddleX(pointerX, minX, maxX)
}

// DeltaMapping moves the paddle by how far the pointer moved since the
// previous sample of the same gesture.
type DeltaMapping struct {
	previous float64
	tracking bool
}

func (d *DeltaMapping) Begin() {
	d.tracking = false
}

func (d *DeltaMapping) Map(paddleX, pointerX, minX, maxX float64) float64 {
	if !d.tracking {
		d.previous = pointerX
		d.tracking = true
		return gamemath.ClampPaddleX(paddleX, minX, maxX)
	}
	delta := pointerX - d.previous
	d.previous = pointerX
	return gamemath.ClampPaddleX(paddleX+delta, minX, maxX)
}

// HandlePointer routes a pointer sample to the bottom paddle. A down event
// starts a gesture and is the serve trigger.
func (s *State) HandlePointer(ev PointerEvent) {
	p := s.Paddles[PaddleBottom]

	switch ev.Phase {
	case PointerDown:
		s.mapping.Begin()
		if s.cfg.Pointer.ServeOnDown {
			s.Serve()
		}
	case PointerMoved:
		p.X = s.mapping.Map(p.X, ev.Position.X, p.MinX, p.MaxX)
	case PointerUp:
		p.X = s.mapping.Map(p.X, ev.Position.X, p.MinX, p.MaxX)
		s.mapping.Begin()
	}
}
