package components

import (
	"github.com/automoto/skpong/sim"
	"github.com/yohamta/donburi"
)

// BodyData links a collision object to the simulation entity it mirrors.
type BodyData struct {
	Body   sim.Body
	Paddle sim.PaddleID // Paddle bodies only
	Ball   *sim.Ball    // Ball bodies only; compared to detect a recreated ball
}

var Body = donburi.NewComponentType[BodyData]()
