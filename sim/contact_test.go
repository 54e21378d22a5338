package sim

import (
	"errors"
	"testing"

	"github.com/automoto/skpong/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    Contact
		want Classification
	}{
		{"ball then side wall", Contact{BallBody(), WallBody(WallLeft)}, Classification{Kind: ContactBallSideWall, Wall: WallLeft}},
		{"side wall then ball", Contact{WallBody(WallRight), BallBody()}, Classification{Kind: ContactBallSideWall, Wall: WallRight}},
		{"end wall then ball", Contact{WallBody(WallTop), BallBody()}, Classification{Kind: ContactBallEndWall, Wall: WallTop}},
		{"ball then bottom wall", Contact{BallBody(), WallBody(WallBottom)}, Classification{Kind: ContactBallEndWall, Wall: WallBottom}},
		{"paddle then ball", Contact{PaddleBody(), BallBody()}, Classification{Kind: ContactBallPaddle}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.c)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tc.want {
				t.Errorf("Classify = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	contacts := []Contact{
		{PaddleBody(), WallBody(WallLeft)},
		{BallBody(), BallBody()},
		{WallBody(WallTop), WallBody(WallLeft)},
		{BallBody(), Body{Category: 1 << 7}},
	}

	for _, c := range contacts {
		if _, err := Classify(c); !errors.Is(err, ErrUnrecognizedContact) {
			t.Errorf("Classify(%v, %v) err = %v, want ErrUnrecognizedContact", c.A.Category, c.B.Category, err)
		}
	}
}

func TestHandleContactSideWallNudges(t *testing.T) {
	s := newTestState(t)
	s.Serve()
	s.Ball.Velocity = Vector{X: 0.0, Y: 150}

	if err := s.HandleContact(Contact{WallBody(WallLeft), BallBody()}); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if got := s.BallVelocity(); got != (Vector{X: 20, Y: 150}) {
		t.Errorf("velocity = %v, want (20,150)", got)
	}
}

func TestHandleContactPaddleIsNoop(t *testing.T) {
	s := newTestState(t)
	s.Serve()
	before := *s.Ball

	if err := s.HandleContact(Contact{BallBody(), PaddleBody()}); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if *s.Ball != before || s.RoundState() != RoundInPlay {
		t.Error("paddle contact should not change the simulation")
	}
}

func TestHandleContactUnrecognizedIsRecoverable(t *testing.T) {
	s := newTestState(t)
	s.Serve()
	before := *s.Ball

	err := s.HandleContact(Contact{PaddleBody(), WallBody(WallLeft)})
	if !errors.Is(err, ErrUnrecognizedContact) {
		t.Fatalf("err = %v", err)
	}
	if *s.Ball != before || s.RoundState() != RoundInPlay {
		t.Error("unrecognized contact changed the simulation")
	}
}

func TestHandleContactEndWallScores(t *testing.T) {
	s := newTestState(t)
	s.Serve()

	if err := s.HandleContact(Contact{BallBody(), WallBody(WallBottom)}); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if s.Scores() != (Score{Player1: 0, Player2: 1}) {
		t.Errorf("scores = %+v", s.Scores())
	}
}

func TestHandleContactEndWallBouncesWhenNotScoring(t *testing.T) {
	s := newTestState(t, func(c *config.GameConfig) { c.Walls.EndWallsScore = false })
	s.Serve()
	s.Ball.Velocity = Vector{X: 150, Y: 0}

	if err := s.HandleContact(Contact{WallBody(WallTop), BallBody()}); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if s.Scores() != (Score{}) {
		t.Errorf("non-scoring end wall changed scores: %+v", s.Scores())
	}
	if got := s.BallVelocity(); got != (Vector{X: 150, Y: -20}) {
		t.Errorf("velocity = %v, want (150,-20)", got)
	}
}

func TestHandleContactEndWallOutsideOfPlay(t *testing.T) {
	s := newTestState(t)

	err := s.HandleContact(Contact{BallBody(), WallBody(WallTop)})
	if !errors.Is(err, ErrNoTransition) {
		t.Errorf("err = %v, want ErrNoTransition", err)
	}
	if s.Scores() != (Score{}) {
		t.Errorf("scores changed: %+v", s.Scores())
	}
}
