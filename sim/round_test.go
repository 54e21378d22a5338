package sim

import (
	"errors"
	"testing"

	"github.com/automoto/skpong/config"
)

func TestServeRequiresBallAtRest(t *testing.T) {
	s := newTestState(t)
	s.Ball.Velocity = Vector{X: 5, Y: 0}

	if s.Serve() {
		t.Fatal("serve should be refused while the ball moves")
	}
	if s.BallVelocity() != (Vector{X: 5, Y: 0}) {
		t.Errorf("velocity changed to %v", s.BallVelocity())
	}
	if s.RoundState() != RoundNotStarted {
		t.Errorf("round = %v", s.RoundState())
	}
	if err := s.Fire(EventServe); !errors.Is(err, ErrGuardRejected) {
		t.Errorf("Fire(serve) err = %v, want ErrGuardRejected", err)
	}
}

func TestServeOnlyOnce(t *testing.T) {
	s := newTestState(t)

	if !s.Serve() {
		t.Fatal("first serve refused")
	}
	s.Ball.Velocity = Vector{}
	if s.Serve() {
		t.Error("serve accepted mid-rally")
	}
	if err := s.Fire(EventServe); !errors.Is(err, ErrNoTransition) {
		t.Errorf("Fire(serve) in play err = %v, want ErrNoTransition", err)
	}
}

func TestTopWallCrossingScoresForPlayerOne(t *testing.T) {
	s := newTestState(t)
	s.Serve()
	old := s.Ball
	s.Ball.Position = Vector{X: 120, Y: 635}

	if err := s.Fire(EventTopWallCrossed); err != nil {
		t.Fatalf("Fire: %v", err)
	}

	if s.Scores() != (Score{Player1: 1, Player2: 0}) {
		t.Errorf("scores = %+v", s.Scores())
	}
	if s.RoundState() != RoundNotStarted {
		t.Errorf("round = %v", s.RoundState())
	}
	if s.Ball == old {
		t.Error("ball was not recreated")
	}
	if s.BallPosition() != s.Center() || !s.BallVelocity().IsZero() {
		t.Errorf("new ball at %v moving %v", s.BallPosition(), s.BallVelocity())
	}
}

func TestBottomWallCrossingScoresForPlayerTwo(t *testing.T) {
	s := newTestState(t)
	s.Serve()

	if err := s.Fire(EventBottomWallCrossed); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if s.Scores() != (Score{Player1: 0, Player2: 1}) {
		t.Errorf("scores = %+v", s.Scores())
	}
}

func TestCrossingOutsideOfPlayIsRejected(t *testing.T) {
	s := newTestState(t)

	if err := s.Fire(EventTopWallCrossed); !errors.Is(err, ErrNoTransition) {
		t.Errorf("err = %v, want ErrNoTransition", err)
	}
	if s.Scores() != (Score{}) {
		t.Errorf("scores = %+v", s.Scores())
	}
}

func TestRoundTripRepeatable(t *testing.T) {
	s := newTestState(t)
	radius := s.Ball.Radius

	for i := 1; i <= 1000; i++ {
		if !s.Serve() {
			t.Fatalf("serve %d refused", i)
		}
		s.Update(1.0 / 60)
		s.Ball.Position.X = float64(i % 400)

		event := EventTopWallCrossed
		if i%2 == 0 {
			event = EventBottomWallCrossed
		}
		if err := s.Fire(event); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
	}

	if s.Scores() != (Score{Player1: 500, Player2: 500}) {
		t.Errorf("scores = %+v", s.Scores())
	}
	if s.Ball.Radius != radius || s.BallPosition() != s.Center() || !s.BallVelocity().IsZero() {
		t.Errorf("ball drifted: %+v", *s.Ball)
	}
	for _, p := range s.Paddles {
		if p.X < p.MinX || p.X > p.MaxX {
			t.Errorf("paddle %v out of bounds: %v", p.ID, p.X)
		}
	}
	if s.Winner != NoPlayer {
		t.Errorf("perpetual rally produced a winner: %v", s.Winner)
	}
}

func TestWinningScoreFinishesMatch(t *testing.T) {
	s := newTestState(t, func(c *config.GameConfig) { c.Round.WinningScore = 2 })

	for i := 0; i < 2; i++ {
		s.Serve()
		if err := s.Fire(EventBottomWallCrossed); err != nil {
			t.Fatalf("Fire: %v", err)
		}
	}

	if s.RoundState() != RoundFinished || s.Winner != Player2 {
		t.Fatalf("round = %v winner = %v", s.RoundState(), s.Winner)
	}
	if s.Serve() {
		t.Error("serve accepted after the match finished")
	}

	s.Reset()
	if s.RoundState() != RoundNotStarted || s.Winner != NoPlayer || s.Scores() != (Score{}) {
		t.Errorf("reset left round=%v winner=%v scores=%+v", s.RoundState(), s.Winner, s.Scores())
	}
	if !s.Serve() {
		t.Error("serve refused after reset")
	}
}

func TestResetMidRally(t *testing.T) {
	s := newTestState(t)
	s.Serve()
	s.Score = Score{Player1: 3, Player2: 4}
	match := s.MatchID

	s.Reset()
	if s.RoundState() != RoundNotStarted || s.Scores() != (Score{}) || !s.BallVelocity().IsZero() {
		t.Errorf("reset left round=%v scores=%+v velocity=%v", s.RoundState(), s.Scores(), s.BallVelocity())
	}
	if s.MatchID == match {
		t.Error("reset kept the previous match id")
	}
}
