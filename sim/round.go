package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundEvent drives the round state machine.
type RoundEvent int

const (
	EventServe RoundEvent = iota
	EventTopWallCrossed
	EventBottomWallCrossed
	EventReset
)

func (e RoundEvent) String() string {
	switch e {
	case EventServe:
		return "serve"
	case EventTopWallCrossed:
		return "top-wall-crossed"
	case EventBottomWallCrossed:
		return "bottom-wall-crossed"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

type transitionKey struct {
	from  RoundState
	event RoundEvent
}

type transition struct {
	to     RoundState
	guard  func(*State) bool
	effect func(*State)
}

var roundTransitions = map[transitionKey]transition{
	{RoundNotStarted, EventServe}: {
		to:     RoundInPlay,
		guard:  (*State).ballAtRest,
		effect: (*State).launchBall,
	},
	{RoundInPlay, EventTopWallCrossed}: {
		to:     RoundNotStarted,
		effect: func(s *State) { s.award(Player1) },
	},
	{RoundInPlay, EventBottomWallCrossed}: {
		to:     RoundNotStarted,
		effect: func(s *State) { s.award(Player2) },
	},
	{RoundNotStarted, EventReset}: {to: RoundNotStarted, effect: (*State).resetMatch},
	{RoundInPlay, EventReset}:     {to: RoundNotStarted, effect: (*State).resetMatch},
	{RoundFinished, EventReset}:   {to: RoundNotStarted, effect: (*State).resetMatch},
}

// Fire applies event to the round state machine.
func (s *State) Fire(event RoundEvent) error {
	from := s.Round
	t, ok := roundTransitions[transitionKey{from: from, event: event}]
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrNoTransition, event, from)
	}
	if t.guard != nil && !t.guard(s) {
		return fmt.Errorf("%w: %s in %s", ErrGuardRejected, event, from)
	}

	if t.effect != nil {
		t.effect(s)
	}
	s.Round = t.to
	if s.Winner != NoPlayer {
		s.Round = RoundFinished
	}

	s.log.WithFields(logrus.Fields{
		"match": s.MatchID,
		"event": event,
		"from":  from,
		"to":    s.Round,
		"p1":    s.Score.Player1,
		"p2":    s.Score.Player2,
	}).Info("round transition")
	return nil
}

// Serve launches the ball if the round has not started and the ball is at
// rest. It reports whether the serve happened.
func (s *State) Serve() bool {
	if err := s.Fire(EventServe); err != nil {
		s.log.WithError(err).Debug("serve ignored")
		return false
	}
	return true
}

// Reset starts a new match: scores zeroed and a fresh ball.
func (s *State) Reset() {
	// Reset has an entry from every state.
	_ = s.Fire(EventReset)
}

func (s *State) ballAtRest() bool {
	return s.Ball.Velocity.IsZero()
}

func (s *State) launchBall() {
	s.Ball.Velocity = Vector{X: s.cfg.Ball.ServeX, Y: s.cfg.Ball.ServeY}
}

func (s *State) award(p Player) {
	switch p {
	case Player1:
		s.Score.Player1++
	case Player2:
		s.Score.Player2++
	}
	s.Ball = s.newBall()

	if target := s.cfg.Round.WinningScore; target > 0 {
		if s.Score.Player1 >= target {
			s.Winner = Player1
		} else if s.Score.Player2 >= target {
			s.Winner = Player2
		}
	}
}

func (s *State) resetMatch() {
	s.Score = Score{}
	s.Winner = NoPlayer
	s.MatchID = uuid.New()
	s.Ball = s.newBall()
	s.mapping.Begin()
	s.ai.Reset()
}
