// Package sim holds the rules of the game: paddle input mapping, ball speed
// governance, contact classification, scoring and the per-tick update.
// Everything operates on an explicit *State; the host only feeds events in
// and reads positions out.
package sim

import (
	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/shared/gamemath"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Vector is the scene-space vector used throughout the simulation.
type Vector = gamemath.Vector

// PaddleID identifies one of the two paddles.
type PaddleID int

const (
	PaddleBottom PaddleID = iota
	PaddleTop
)

func (id PaddleID) String() string {
	if id == PaddleTop {
		return "top"
	}
	return "bottom"
}

// Player identifies a score owner.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Paddle is a horizontally moving barrier at a fixed height.
type Paddle struct {
	ID     PaddleID
	Owner  Player
	X, Y   float64
	Width  float64
	Height float64
	MinX   float64
	MaxX   float64
}

// HalfWidth returns half of the paddle width.
func (p *Paddle) HalfWidth() float64 {
	return p.Width / 2
}

// SetX moves the paddle, keeping it inside its bounds.
func (p *Paddle) SetX(x float64) {
	p.X = gamemath.ClampPaddleX(x, p.MinX, p.MaxX)
}

// Ball is the single moving entity.
type Ball struct {
	Position Vector
	Velocity Vector
	Radius   float64
}

// Score holds both players' points.
type Score struct {
	Player1 int
	Player2 int
}

// RoundState is the round controller state.
type RoundState int

const (
	RoundNotStarted RoundState = iota
	RoundInPlay
	RoundFinished
)

func (r RoundState) String() string {
	switch r {
	case RoundNotStarted:
		return "not-started"
	case RoundInPlay:
		return "in-play"
	case RoundFinished:
		return "finished"
	}
	return "unknown"
}

// State is the authoritative simulation state.
type State struct {
	cfg config.GameConfig
	log logrus.FieldLogger

	Width, Height float64

	Ball    *Ball
	Paddles [2]*Paddle
	Walls   [4]Wall
	Score   Score
	Round   RoundState
	Winner  Player
	MatchID uuid.UUID // Changes on every reset

	mapping MappingPolicy
	ai      PaddleAI
}

// Option customizes a State at construction.
type Option func(*State)

// WithLogger sets the logger used for anomalies and transitions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *State) { s.log = l }
}

// WithMapping replaces the pointer mapping policy chosen by the config.
func WithMapping(m MappingPolicy) Option {
	return func(s *State) { s.mapping = m }
}

// WithPaddleAI replaces the top paddle strategy chosen by the config.
func WithPaddleAI(ai PaddleAI) Option {
	return func(s *State) { s.ai = ai }
}

// NewState lays out paddles, walls and a resting ball for cfg.
func NewState(cfg config.GameConfig, opts ...Option) *State {
	s := &State{
		cfg:     cfg,
		log:     logrus.StandardLogger(),
		Width:   cfg.Scene.Width,
		Height:  cfg.Scene.Height,
		MatchID: uuid.New(),
	}

	paddleW := cfg.Scene.Width / cfg.Paddle.WidthRatio
	paddleH := cfg.Scene.Height / cfg.Paddle.HeightRatio
	margin := cfg.Paddle.EdgeMargin(cfg.Scene.Width)
	bottomY := paddleH + cfg.Paddle.YOffset

	s.Paddles[PaddleBottom] = &Paddle{
		ID: PaddleBottom, Owner: Player1,
		X: cfg.Scene.Width / 2, Y: bottomY,
		Width: paddleW, Height: paddleH,
		MinX: margin, MaxX: cfg.Scene.Width - margin,
	}
	s.Paddles[PaddleTop] = &Paddle{
		ID: PaddleTop, Owner: Player2,
		X: cfg.Scene.Width / 2, Y: cfg.Scene.Height - bottomY,
		Width: paddleW, Height: paddleH,
		MinX: margin, MaxX: cfg.Scene.Width - margin,
	}

	s.Walls = newWalls(cfg.Scene.Width, cfg.Scene.Height, cfg.Walls.Thickness)
	s.Ball = s.newBall()
	s.mapping = NewMappingPolicy(cfg.Pointer.Mapping)
	s.ai = NewPaddleAI(cfg.AI)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) newBall() *Ball {
	paddleW := s.cfg.Scene.Width / s.cfg.Paddle.WidthRatio
	return &Ball{
		Position: s.Center(),
		Radius:   paddleW / s.cfg.Ball.RadiusRatio,
	}
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.GameConfig {
	return s.cfg
}

// Center returns the middle of the scene.
func (s *State) Center() Vector {
	return Vector{X: s.Width / 2, Y: s.Height / 2}
}

// BallPosition returns the current ball position.
func (s *State) BallPosition() Vector {
	return s.Ball.Position
}

// BallVelocity returns the current ball velocity.
func (s *State) BallVelocity() Vector {
	return s.Ball.Velocity
}

// Paddle returns the paddle with the given id.
func (s *State) Paddle(id PaddleID) *Paddle {
	return s.Paddles[id]
}

// PaddleX returns the horizontal position of a paddle.
func (s *State) PaddleX(id PaddleID) float64 {
	return s.Paddles[id].X
}

// Scores returns both players' points.
func (s *State) Scores() Score {
	return s.Score
}

// RoundState returns the current round state.
func (s *State) RoundState() RoundState {
	return s.Round
}
