package sim

// Update runs one simulation tick of dt seconds. Outside of play it does
// nothing; contacts are handled as they are reported, not here.
func (s *State) Update(dt float64) {
	if s.Round != RoundInPlay {
		return
	}
	s.governBall(dt)
	s.ai.Follow(s.Paddles[PaddleTop], s.Ball.Position.X, dt)
}
