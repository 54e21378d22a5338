package sim

import (
	"math"
	"testing"

	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/logger"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// newTestState builds a 400x640 state with a silent logger.
func newTestState(t *testing.T, mods ...func(*config.GameConfig)) *State {
	t.Helper()
	cfg := config.Default()
	for _, mod := range mods {
		mod(&cfg)
	}
	return NewState(cfg, WithLogger(logger.Discard()))
}

func TestNewStateLayout(t *testing.T) {
	s := newTestState(t)

	bottom := s.Paddle(PaddleBottom)
	if bottom.Width != 80 || bottom.Height != 16 {
		t.Errorf("paddle size = %vx%v, want 80x16", bottom.Width, bottom.Height)
	}
	if bottom.Y != 36 {
		t.Errorf("bottom paddle y = %v, want 36", bottom.Y)
	}
	if top := s.Paddle(PaddleTop); top.Y != 604 || top.Owner != Player2 {
		t.Errorf("top paddle = %+v", top)
	}
	if bottom.Owner != Player1 {
		t.Errorf("bottom paddle owner = %v", bottom.Owner)
	}

	// Full paddle width on each side by default.
	if bottom.MinX != 80 || bottom.MaxX != 320 {
		t.Errorf("bounds = [%v, %v], want [80, 320]", bottom.MinX, bottom.MaxX)
	}
	if bottom.HalfWidth() != 40 {
		t.Errorf("HalfWidth = %v", bottom.HalfWidth())
	}

	if s.BallPosition() != (Vector{X: 200, Y: 320}) {
		t.Errorf("ball position = %v", s.BallPosition())
	}
	if !s.BallVelocity().IsZero() {
		t.Errorf("ball should start at rest, got %v", s.BallVelocity())
	}
	if s.Ball.Radius != 10 {
		t.Errorf("ball radius = %v, want 10", s.Ball.Radius)
	}
	if s.RoundState() != RoundNotStarted {
		t.Errorf("round = %v", s.RoundState())
	}
}

func TestPaddleMarginModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     config.MarginMode
		margin   float64
		min, max float64
	}{
		{"full width", config.MarginFullWidth, 0, 80, 320},
		{"half width", config.MarginHalfWidth, 0, 40, 360},
		{"custom", config.MarginCustom, 10, 10, 390},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(t, func(c *config.GameConfig) {
				c.Paddle.MarginMode = tc.mode
				c.Paddle.Margin = tc.margin
			})
			p := s.Paddle(PaddleTop)
			if p.MinX != tc.min || p.MaxX != tc.max {
				t.Errorf("bounds = [%v, %v], want [%v, %v]", p.MinX, p.MaxX, tc.min, tc.max)
			}
		})
	}
}

func TestWallsAreTagged(t *testing.T) {
	s := newTestState(t)

	for kind, w := range s.Walls {
		if w.Kind != WallKind(kind) {
			t.Errorf("wall %d has kind %v", kind, w.Kind)
		}
	}
	if s.Walls[WallLeft].Kind.Category() != CategorySideWall {
		t.Error("left wall should be a side wall")
	}
	if s.Walls[WallTop].Kind.Category() != CategoryEndWall {
		t.Error("top wall should be an end wall")
	}
	if top := s.Walls[WallTop]; top.Min.Y != 636 || top.Max.Y != 640 {
		t.Errorf("top wall spans %v..%v", top.Min.Y, top.Max.Y)
	}
}

func TestPaddleBoundsNeverInvert(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.GameConfig)
		valid  bool
	}{
		{"custom margin at center", func(c *config.GameConfig) {
			c.Paddle.MarginMode = config.MarginCustom
			c.Paddle.Margin = 200
		}, true},
		{"custom margin past center", func(c *config.GameConfig) {
			c.Paddle.MarginMode = config.MarginCustom
			c.Paddle.Margin = 250
		}, false},
		{"full width ratio below two", func(c *config.GameConfig) {
			c.Paddle.WidthRatio = 1.5
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Fatalf("Validate() = %v, want valid %v", err, tc.valid)
			}
			if !tc.valid {
				return
			}

			s := NewState(cfg, WithLogger(logger.Discard()))
			p := s.Paddle(PaddleBottom)
			if p.MinX > p.MaxX {
				t.Fatalf("bounds inverted: [%v, %v]", p.MinX, p.MaxX)
			}
			for _, x := range []float64{-100, 0, 199, 400, 900} {
				s.HandlePointer(PointerEvent{Phase: PointerMoved, Position: Vector{X: x}})
				if got := s.PaddleX(PaddleBottom); got < p.MinX || got > p.MaxX {
					t.Errorf("pointer %v -> paddle %v outside [%v, %v]", x, got, p.MinX, p.MaxX)
				}
			}
		})
	}
}
