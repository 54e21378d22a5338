package systems

import (
	"math"

	"github.com/automoto/skpong/components"
	"github.com/automoto/skpong/shared/gamemath"
	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/systems/factory"
	"github.com/automoto/skpong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions finds what the ball touches, applies the elastic
// response (restitution 1, no damping) and reports each new contact to the
// simulation once.
func UpdateCollisions(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok || s.State.Round != sim.RoundInPlay {
		return
	}

	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ball := s.State.Ball
	ballObj := components.Object.Get(ballEntry).Object

	// Test where physics moved the ball this tick, not where it started.
	factory.SyncBall(ballObj, ball)

	touching := map[*resolv.Object]bool{}
	var contacts []sim.Contact

	check := ballObj.Check(0, 0, tags.ResolvSideWall, tags.ResolvEndWall, tags.ResolvPaddle)
	if check != nil {
		for _, other := range check.Objects {
			contact := ballObj.Shape.Intersection(0, 0, other.Shape)
			if contact == nil {
				continue
			}
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			body := components.Body.Get(entry)

			respond(s.State, ball, body, sim.Vector{X: contact.MTV[0], Y: contact.MTV[1]})
			factory.SyncBall(ballObj, ball)

			touching[other] = true
			if !s.Touching[other] {
				contacts = append(contacts, sim.Contact{A: sim.BallBody(), B: body.Body})
			}
		}
	}
	s.Touching = touching

	for _, c := range contacts {
		// Errors are logged by the simulation and never fatal.
		_ = s.State.HandleContact(c)
		if s.State.Ball != ball {
			// Scored: the remaining contacts belonged to the old ball.
			break
		}
	}
}

// respond separates the ball from body and reflects it. Walls bound the
// field, so the ball is always pushed back inside. Paddles can be touched
// from either face: the ball moves out along mtv, the translation resolv
// reports to clear the overlap, and only bounces when heading into the
// paddle. A ball already past a paddle keeps going toward the end wall.
func respond(state *sim.State, b *sim.Ball, body *components.BodyData, mtv sim.Vector) {
	switch body.Body.Category {
	case sim.CategorySideWall:
		w := state.Walls[body.Body.Wall]
		if body.Body.Wall == sim.WallLeft {
			b.Velocity.X = gamemath.Bounce(b.Velocity.X, true)
			b.Position.X = math.Max(b.Position.X, w.Max.X+b.Radius)
		} else {
			b.Velocity.X = gamemath.Bounce(b.Velocity.X, false)
			b.Position.X = math.Min(b.Position.X, w.Min.X-b.Radius)
		}

	case sim.CategoryEndWall:
		if state.Config().Walls.EndWallsScore {
			// Crossing it ends the round; nothing to bounce off.
			return
		}
		w := state.Walls[body.Body.Wall]
		if body.Body.Wall == sim.WallBottom {
			b.Velocity.Y = gamemath.Bounce(b.Velocity.Y, true)
			b.Position.Y = math.Max(b.Position.Y, w.Max.Y+b.Radius)
		} else {
			b.Velocity.Y = gamemath.Bounce(b.Velocity.Y, false)
			b.Position.Y = math.Min(b.Position.Y, w.Min.Y-b.Radius)
		}

	case sim.CategoryPaddle:
		if mtv.IsZero() {
			return
		}
		b.Position = b.Position.Add(mtv)
		b.Velocity = gamemath.Reflect(b.Velocity, mtv.Unit())
	}
}
