package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/skpong/logger"
	"github.com/automoto/skpong/sim"
)

func TestStepAppliesQueuedServe(t *testing.T) {
	s := newState()
	q := &sim.CommandQueue{}
	l := NewLoop(s, q, 60, 0, logger.Discard())

	q.Push(func(s *sim.State) { s.Serve() })
	l.Step()

	if s.RoundState() != sim.RoundInPlay {
		t.Fatalf("round = %v, want in play", s.RoundState())
	}
	if y := s.BallPosition().Y; y >= 320 {
		t.Errorf("ball y = %v, want below center after one tick", y)
	}
	if l.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", l.Ticks())
	}
}

func TestOnTickSeesEveryStep(t *testing.T) {
	s := newState()
	l := NewLoop(s, &sim.CommandQueue{}, 60, 0, logger.Discard())

	var seen int
	l.OnTick(func(got *sim.State) {
		if got != s {
			t.Error("OnTick got a different state")
		}
		seen++
	})
	l.Step()
	l.Step()

	if seen != 2 {
		t.Errorf("OnTick ran %d times, want 2", seen)
	}
}

func TestMissedBallScoresForTopPlayer(t *testing.T) {
	s := newState()
	q := &sim.CommandQueue{}
	l := NewLoop(s, q, 60, 0, logger.Discard())

	// Move the bottom paddle out of the ball's straight path.
	q.PushPointer(sim.PointerEvent{Phase: sim.PointerMoved, Position: sim.Vector{X: 320}})
	q.Push(func(s *sim.State) { s.Serve() })

	for i := 0; i < 600 && s.Scores().Player2 == 0; i++ {
		l.Step()
	}

	if got := s.Scores(); got.Player2 != 1 || got.Player1 != 0 {
		t.Fatalf("score = %+v, want 0-1", got)
	}
	if s.RoundState() != sim.RoundNotStarted {
		t.Errorf("round = %v, want not started", s.RoundState())
	}
	if p := s.BallPosition(); p != s.Center() {
		t.Errorf("ball at %+v, want center %+v", p, s.Center())
	}
}

func TestRallyKeepsGoingWhenPaddleBlocks(t *testing.T) {
	s := newState()
	q := &sim.CommandQueue{}
	l := NewLoop(s, q, 60, 0, logger.Discard())

	q.Push(func(s *sim.State) { s.Serve() })
	for i := 0; i < 600; i++ {
		l.Step()
	}

	if got := s.Scores(); got.Player1 != 0 || got.Player2 != 0 {
		t.Errorf("score = %+v, want no points while both paddles block", got)
	}
	if s.RoundState() != sim.RoundInPlay {
		t.Errorf("round = %v, want in play", s.RoundState())
	}
}

func TestRunStopsAtTickLimit(t *testing.T) {
	l := NewLoop(newState(), &sim.CommandQueue{}, 1000, 3, logger.Discard())

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", l.Ticks())
	}
}

func TestRunStopsOnStop(t *testing.T) {
	l := NewLoop(newState(), &sim.CommandQueue{}, 1000, 0, logger.Discard())

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	l.Stop()
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestRunReturnsContextError(t *testing.T) {
	l := NewLoop(newState(), &sim.CommandQueue{}, 1000, 0, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
