package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/skpong/config"
	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/systems"
	"github.com/automoto/skpong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PongScene hosts one simulation in the window. The world is built on the
// first Update so construction stays cheap.
type PongScene struct {
	ecs   *ecs.ECS
	state *sim.State
	queue *sim.CommandQueue
	once  sync.Once
}

// NewPongScene creates a scene around state. queue may be nil.
func NewPongScene(state *sim.State, queue *sim.CommandQueue) *PongScene {
	if queue == nil {
		queue = &sim.CommandQueue{}
	}
	return &PongScene{state: state, queue: queue}
}

func (ps *PongScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Size returns the scene size in pixels.
func (ps *PongScene) Size() (int, int) {
	return int(ps.state.Width), int(ps.state.Height)
}

func (ps *PongScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must reach the simulation before the frame system runs
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePointer))
	systems.Install(ecs, ps.state, ps.queue)

	ecs.AddRenderer(cfg.LayerDefault, systems.DrawArena)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawPause)

	factory.CreatePointer(ecs)
	ps.ecs = ecs
}
