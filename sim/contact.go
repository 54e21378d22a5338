package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Category is a collision category bitmask.
type Category uint32

const (
	CategoryBall     Category = 1 << 0
	CategorySideWall Category = 1 << 1
	CategoryEndWall  Category = 1 << 2
	CategoryPaddle   Category = 1 << 3
)

func (c Category) String() string {
	switch c {
	case CategoryBall:
		return "ball"
	case CategorySideWall:
		return "side-wall"
	case CategoryEndWall:
		return "end-wall"
	case CategoryPaddle:
		return "paddle"
	}
	return fmt.Sprintf("category(%#x)", uint32(c))
}

// WallKind tags each boundary segment.
type WallKind int

const (
	WallLeft WallKind = iota
	WallRight
	WallTop
	WallBottom
)

func (k WallKind) String() string {
	switch k {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	}
	return "unknown"
}

// Category returns the collision category carried by walls of this kind.
func (k WallKind) Category() Category {
	if k == WallLeft || k == WallRight {
		return CategorySideWall
	}
	return CategoryEndWall
}

// Wall is a static axis-aligned boundary.
type Wall struct {
	Kind WallKind
	Min  Vector
	Max  Vector
}

func newWalls(w, h, thickness float64) [4]Wall {
	return [4]Wall{
		WallLeft:   {Kind: WallLeft, Min: Vector{X: 0, Y: 0}, Max: Vector{X: thickness, Y: h}},
		WallRight:  {Kind: WallRight, Min: Vector{X: w - thickness, Y: 0}, Max: Vector{X: w, Y: h}},
		WallTop:    {Kind: WallTop, Min: Vector{X: 0, Y: h - thickness}, Max: Vector{X: w, Y: h}},
		WallBottom: {Kind: WallBottom, Min: Vector{X: 0, Y: 0}, Max: Vector{X: w, Y: thickness}},
	}
}

// Body is one side of a contact as reported by the physics host.
type Body struct {
	Category Category
	Wall     WallKind // Meaningful for wall categories only
}

// BallBody returns the body describing the ball.
func BallBody() Body { return Body{Category: CategoryBall} }

// PaddleBody returns the body describing a paddle.
func PaddleBody() Body { return Body{Category: CategoryPaddle} }

// WallBody returns the body describing the wall of kind k.
func WallBody(k WallKind) Body { return Body{Category: k.Category(), Wall: k} }

// Contact is a begin-contact event between two bodies, in any order.
type Contact struct {
	A, B Body
}

// ContactKind is the classified meaning of a contact.
type ContactKind int

const (
	ContactBallSideWall ContactKind = iota + 1
	ContactBallEndWall
	ContactBallPaddle
)

func (k ContactKind) String() string {
	switch k {
	case ContactBallSideWall:
		return "ball-side-wall"
	case ContactBallEndWall:
		return "ball-end-wall"
	case ContactBallPaddle:
		return "ball-paddle"
	}
	return "unknown"
}

// Classification is the result of classifying a contact.
type Classification struct {
	Kind ContactKind
	Wall WallKind // Set for wall contacts
}

// Classify orders the bodies by category so that dispatch does not depend on
// the order the host reported them in, then matches category masks.
func Classify(c Contact) (Classification, error) {
	bodies := []Body{c.A, c.B}
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Category < bodies[j].Category
	})
	first, second := bodies[0], bodies[1]

	if first.Category&CategoryBall == 0 {
		return Classification{}, unrecognized(first, second)
	}

	switch {
	case second.Category&CategorySideWall != 0:
		return Classification{Kind: ContactBallSideWall, Wall: second.Wall}, nil
	case second.Category&CategoryEndWall != 0:
		return Classification{Kind: ContactBallEndWall, Wall: second.Wall}, nil
	case second.Category&CategoryPaddle != 0:
		return Classification{Kind: ContactBallPaddle}, nil
	}
	return Classification{}, unrecognized(first, second)
}

func unrecognized(a, b Body) error {
	return fmt.Errorf("%w: %s with %s", ErrUnrecognizedContact, a.Category, b.Category)
}

// HandleContact classifies c and applies its reaction. Paddle contacts need
// nothing: the host's elastic response already reflected the ball.
func (s *State) HandleContact(c Contact) error {
	cl, err := Classify(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"a": c.A.Category,
			"b": c.B.Category,
		}).Warn("ignoring contact")
		return err
	}

	switch cl.Kind {
	case ContactBallSideWall:
		s.nudgeBall(cl.Wall)
	case ContactBallEndWall:
		if !s.cfg.Walls.EndWallsScore {
			s.nudgeBall(cl.Wall)
			return nil
		}
		return s.crossEndWall(cl.Wall)
	case ContactBallPaddle:
	}
	return nil
}

func (s *State) crossEndWall(k WallKind) error {
	event := EventBottomWallCrossed
	if k == WallTop {
		event = EventTopWallCrossed
	}
	if err := s.Fire(event); err != nil {
		s.log.WithFields(logrus.Fields{
			"wall":  k,
			"round": s.Round,
		}).Debug("end wall contact outside of play")
		return err
	}
	return nil
}
