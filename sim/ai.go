package sim

import (
	"github.com/automoto/skpong/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PaddleAI moves an autoplay paddle toward a target x.
type PaddleAI interface {
	Follow(p *Paddle, targetX, dt float64)
	Reset()
}

// NewPaddleAI returns the strategy selected by cfg.
func NewPaddleAI(cfg config.AIConfig) PaddleAI {
	if cfg.Strategy == config.AITween {
		return NewTweenAI(cfg.FollowDuration)
	}
	return TeleportAI{}
}

// TeleportAI puts the paddle directly under the target.
type TeleportAI struct{}

func (TeleportAI) Follow(p *Paddle, targetX, _ float64) {
	p.SetX(targetX)
}

func (TeleportAI) Reset() {}

// TweenAI glides the paddle toward the target over a fixed duration. The
// tween restarts whenever the target moves, so a moving ball is chased
// rather than reached instantly.
type TweenAI struct {
	Duration float64

	tween  *gween.Tween
	target float64
}

// NewTweenAI returns a tween follower taking duration seconds per move.
func NewTweenAI(duration float64) *TweenAI {
	return &TweenAI{Duration: duration}
}

func (t *TweenAI) Follow(p *Paddle, targetX, dt float64) {
	if t.tween == nil || targetX != t.target {
		t.target = targetX
		t.tween = gween.New(float32(p.X), float32(targetX), float32(t.Duration), ease.Linear)
	}
	x, finished := t.tween.Update(float32(dt))
	p.SetX(float64(x))
	if finished {
		// Land exactly, float32 rounding would otherwise leave a gap.
		p.SetX(targetX)
	}
}

func (t *TweenAI) Reset() {
	t.tween = nil
}
