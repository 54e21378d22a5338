package tags

import "github.com/yohamta/donburi"

var (
	Ball       = donburi.NewTag().SetName("Ball")
	Paddle     = donburi.NewTag().SetName("Paddle")
	Wall       = donburi.NewTag().SetName("Wall")
	Simulation = donburi.NewTag().SetName("Simulation")
)

// Resolv tags for physics collision
const (
	ResolvBall     = "ball"
	ResolvPaddle   = "paddle"
	ResolvSideWall = "sidewall"
	ResolvEndWall  = "endwall"
)
