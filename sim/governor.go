package sim

import (
	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/shared/gamemath"
)

// Nudge pushes v away from wall k when the component normal to that wall is
// below epsilon, so the ball cannot glide along it forever.
func Nudge(v Vector, k WallKind, magnitude, epsilon float64) Vector {
	switch k {
	case WallLeft:
		v.X = gamemath.NudgeAxis(v.X, 1, magnitude, epsilon)
	case WallRight:
		v.X = gamemath.NudgeAxis(v.X, -1, magnitude, epsilon)
	case WallBottom:
		v.Y = gamemath.NudgeAxis(v.Y, 1, magnitude, epsilon)
	case WallTop:
		v.Y = gamemath.NudgeAxis(v.Y, -1, magnitude, epsilon)
	}
	return v
}

func (s *State) nudgeBall(k WallKind) {
	before := s.Ball.Velocity
	s.Ball.Velocity = Nudge(before, k, s.cfg.Walls.NudgeMagnitude, s.cfg.Walls.NudgeEpsilon)
	if s.Ball.Velocity != before {
		s.log.WithField("wall", k).Debug("nudged ball off wall")
	}
}

// governBall keeps the ball at or above the minimum speed.
func (s *State) governBall(dt float64) {
	b := s.Ball
	if b.Velocity.IsZero() {
		// In play with no direction: reuse the serve direction.
		serve := Vector{X: s.cfg.Ball.ServeX, Y: s.cfg.Ball.ServeY}
		b.Velocity = serve.Unit().Scale(s.cfg.Ball.MinSpeed)
		s.log.WithField("velocity", b.Velocity).Warn("ball stopped in play, reseeded")
		return
	}

	switch s.cfg.Governor.Mode {
	case config.GovernorTimeScaled:
		b.Velocity = gamemath.ApproachMinimumSpeed(b.Velocity, s.cfg.Ball.MinSpeed, s.cfg.Governor.Acceleration, dt)
	default:
		b.Velocity = gamemath.EnforceMinimumSpeed(b.Velocity, s.cfg.Ball.MinSpeed)
	}
}
