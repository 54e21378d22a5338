// Package headless runs the simulation without a window: a fixed-rate
// ticker steps the same ECS systems the window host uses, and pointer
// commands arrive as text lines.
package headless

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/systems"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Loop steps a simulation at a fixed tick rate.
type Loop struct {
	ecs      *ecs.ECS
	state    *sim.State
	queue    *sim.CommandQueue
	log      logrus.FieldLogger
	tickRate int
	maxTicks int // 0 runs until stopped
	ticks    int
	onTick   func(*sim.State)

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop builds the ECS world for state. Commands pushed to queue are
// applied at the start of the next tick.
func NewLoop(state *sim.State, queue *sim.CommandQueue, tickRate, maxTicks int, log logrus.FieldLogger) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	e := ecs.NewECS(donburi.NewWorld())
	systems.Install(e, state, queue)

	return &Loop{
		ecs:      e,
		state:    state,
		queue:    queue,
		log:      log,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called, ctx is done or the tick limit is hit.
// Only a cancelled context is reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.WithFields(logrus.Fields{
		"tickRate": l.tickRate,
		"maxTicks": l.maxTicks,
	}).Info("headless loop started")
	defer func() {
		score := l.state.Scores()
		l.log.WithFields(logrus.Fields{
			"ticks": l.ticks,
			"p1":    score.Player1,
			"p2":    score.Player2,
			"round": l.state.RoundState(),
		}).Info("headless loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return nil
		case <-ticker.C:
			l.Step()
			if l.maxTicks > 0 && l.ticks >= l.maxTicks {
				return nil
			}
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// OnTick registers fn to run on the loop goroutine after every tick.
// Must be called before Run.
func (l *Loop) OnTick(fn func(*sim.State)) {
	l.onTick = fn
}

// Step advances the world by one tick without waiting for the ticker.
func (l *Loop) Step() {
	l.ecs.Update()
	l.ticks++
	if l.onTick != nil {
		l.onTick(l.state)
	}
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() int {
	return l.ticks
}
