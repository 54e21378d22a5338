// Package terminal draws the simulation into a tcell screen and turns
// mouse drags and arrow keys into paddle input.
package terminal

import (
	"fmt"
	"math"
	"sync"

	"github.com/automoto/skpong/sim"
	"github.com/gdamore/tcell"
	"github.com/sirupsen/logrus"
)

const (
	BallSymbol   = 0x25CF
	PaddleSymbol = 0x2588
	WallSymbol   = 0x2591

	// KeyStep is how far one arrow key press moves the paddle, in scene units.
	KeyStep = 20.0
)

// Host renders into screen and feeds input through queue. Draw must be
// called on the goroutine that owns the State; PollEvents runs on its own.
type Host struct {
	screen tcell.Screen
	queue  *sim.CommandQueue
	log    logrus.FieldLogger

	sceneW, sceneH float64

	mu          sync.Mutex // Guards pressed
	pressed     bool
	quit        chan struct{}
	quitOnce    sync.Once
	defaultSty  tcell.Style
	paddleStyle tcell.Style
	ballStyle   tcell.Style
}

// NewHost wraps an initialised screen. The scene size maps onto whatever
// cell grid the screen currently has.
func NewHost(screen tcell.Screen, sceneW, sceneH float64, queue *sim.CommandQueue, log logrus.FieldLogger) *Host {
	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.EnableMouse()

	return &Host{
		screen:      screen,
		queue:       queue,
		log:         log,
		sceneW:      sceneW,
		sceneH:      sceneH,
		quit:        make(chan struct{}),
		defaultSty:  defaultStyle,
		paddleStyle: defaultStyle.Foreground(tcell.ColorBlue),
		ballStyle:   defaultStyle.Foreground(tcell.ColorYellow),
	}
}

// Quit is closed when the user asks to leave.
func (h *Host) Quit() <-chan struct{} {
	return h.quit
}

// Draw renders walls, paddles, ball and scores.
func (h *Host) Draw(s *sim.State) {
	h.screen.Clear()
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	for _, w := range s.Walls {
		h.fill(w.Min.X, w.Min.Y, w.Max.X, w.Max.Y, WallSymbol, h.defaultSty)
	}
	for _, p := range s.Paddles {
		h.fill(p.X-p.HalfWidth(), p.Y-p.Height/2, p.X+p.HalfWidth(), p.Y+p.Height/2, PaddleSymbol, h.paddleStyle)
	}

	col, row := h.toCell(s.Ball.Position.X, s.Ball.Position.Y)
	h.screen.SetContent(col, row, BallSymbol, nil, h.ballStyle)

	score := s.Scores()
	h.print(1, 1, fmt.Sprintf("P2 %d", score.Player2))
	h.print(1, rows-2, fmt.Sprintf("P1 %d", score.Player1))
	switch s.RoundState() {
	case sim.RoundNotStarted:
		h.print(1, rows/2, "space to serve")
	case sim.RoundFinished:
		h.print(1, rows/2, fmt.Sprintf("player %d wins, r to reset", s.Winner))
	}

	h.screen.Show()
}

// PollEvents handles input until the screen is finalised or the user quits.
func (h *Host) PollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.HandleEvent(ev) {
			h.log.Debug("terminal quit requested")
			h.quitOnce.Do(func() { close(h.quit) })
			return
		}
	}
}

// HandleEvent queues the command for one event. It returns false when the
// event asks to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.queue.Push(stepPaddle(-KeyStep))
	case tcell.KeyRight:
		h.queue.Push(stepPaddle(KeyStep))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			h.queue.Push(func(s *sim.State) { s.Serve() })
		case 'r':
			h.queue.Push((*sim.State).Reset)
		}
	}
	return true
}

func stepPaddle(dx float64) sim.Command {
	return func(s *sim.State) {
		p := s.Paddle(sim.PaddleBottom)
		p.SetX(p.X + dx)
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	pos := h.toScene(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	h.mu.Lock()
	was := h.pressed
	h.pressed = down
	h.mu.Unlock()

	switch {
	case down && !was:
		h.queue.PushPointer(sim.PointerEvent{Phase: sim.PointerDown, Position: pos})
	case down && was:
		h.queue.PushPointer(sim.PointerEvent{Phase: sim.PointerMoved, Position: pos})
	case !down && was:
		h.queue.PushPointer(sim.PointerEvent{Phase: sim.PointerUp, Position: pos})
	}
}

// toCell maps a scene point to a cell. Row 0 is the top of the screen.
func (h *Host) toCell(x, y float64) (int, int) {
	cols, rows := h.screen.Size()
	col := int(math.Floor(x / h.sceneW * float64(cols)))
	row := rows - 1 - int(math.Floor(y/h.sceneH*float64(rows)))
	return clampInt(col, 0, cols-1), clampInt(row, 0, rows-1)
}

// toScene maps the center of a cell back to scene units.
func (h *Host) toScene(col, row int) sim.Vector {
	cols, rows := h.screen.Size()
	return sim.Vector{
		X: (float64(col) + 0.5) * h.sceneW / float64(cols),
		Y: (float64(rows-row) - 0.5) * h.sceneH / float64(rows),
	}
}

func (h *Host) fill(minX, minY, maxX, maxY float64, ch rune, style tcell.Style) {
	c0, r1 := h.toCell(minX, minY)
	c1, r0 := h.toCell(maxX, maxY)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			h.screen.SetContent(c, r, ch, nil, style)
		}
	}
}

func (h *Host) print(col, row int, text string) {
	for i, ch := range text {
		h.screen.SetContent(col+i, row, ch, nil, h.defaultSty)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
