package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/skpong/config"
	"github.com/automoto/skpong/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena draws walls, paddles and the ball as flat shapes.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	state := State(e)
	if state == nil {
		return
	}
	screen.Fill(cfg.Colors.Background)

	for _, w := range state.Walls {
		drawRect(screen, state, w.Min.X, w.Min.Y, w.Max.X-w.Min.X, w.Max.Y-w.Min.Y, cfg.Colors.Wall)
	}
	for _, p := range state.Paddles {
		drawRect(screen, state, p.X-p.HalfWidth(), p.Y-p.Height/2, p.Width, p.Height, cfg.Colors.Paddle)
	}

	b := state.Ball
	vector.FillCircle(screen,
		float32(b.Position.X), float32(state.Height-b.Position.Y),
		float32(b.Radius), cfg.Colors.Ball, true)
}

// drawRect draws a scene-space rectangle given by its lower-left corner.
func drawRect(screen *ebiten.Image, state *sim.State, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen,
		float32(x), float32(state.Height-y-h),
		float32(w), float32(h), clr, false)
}

// DrawHUD prints the score label and a round hint.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	state := State(e)
	if state == nil {
		return
	}
	score := state.Scores()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P2 %d", score.Player2), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P1 %d", score.Player1), 10, int(state.Height)-24)

	switch state.RoundState() {
	case sim.RoundNotStarted:
		ebitenutil.DebugPrintAt(screen, "tap to serve", int(state.Width/2)-36, int(state.Height/2)+16)
	case sim.RoundFinished:
		msg := fmt.Sprintf("player %d wins - press R", state.Winner)
		ebitenutil.DebugPrintAt(screen, msg, int(state.Width/2)-72, int(state.Height/2)+16)
	}

	if cfg.Debug.ShowBodies {
		v := state.BallVelocity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("v=(%.0f, %.0f) %.0f TPS", v.X, v.Y, ebiten.ActualTPS()), 10, 26)
	}
}
