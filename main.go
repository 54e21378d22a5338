package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/skpong/config"
	"github.com/automoto/skpong/headless"
	"github.com/automoto/skpong/logger"
	"github.com/automoto/skpong/scenes"
	"github.com/automoto/skpong/sim"
	"github.com/automoto/skpong/terminal"
	"github.com/gdamore/tcell"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func NewGame(state *sim.State) *Game {
	scene := scenes.NewPongScene(state, nil)
	w, h := scene.Size()
	return &Game{scene: scene, width: w, height: h}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "path to a yaml, toml or json config file")
	runHeadless := flag.Bool("headless", false, "run without a window, reading commands from stdin")
	runTerminal := flag.Bool("tui", false, "run in the terminal, playing with mouse or arrow keys")
	ticks := flag.Int("ticks", 0, "stop the headless loop after this many ticks (0 runs until interrupted)")
	tickRate := flag.Int("tickrate", 0, "headless ticks per second (defaults to scene.tps)")
	flag.BoolVar(&config.Debug.ShowBodies, "debug", config.Debug.ShowBodies, "outline collision objects")
	flag.Parse()

	gameCfg := config.Game
	logCfg := config.Log
	var loadErr error
	if *configPath != "" {
		gameCfg, logCfg, loadErr = config.Load(*configPath)
	}

	log, err := logger.New(logCfg)
	if err != nil {
		log = logrus.New()
		log.WithError(err).Warn("Invalid log settings, using defaults")
	}
	if loadErr != nil {
		log.WithError(loadErr).Warn("Could not load config, using defaults")
	}
	config.Game = gameCfg
	config.Log = logCfg

	state := sim.NewState(gameCfg, sim.WithLogger(log))

	rate := *tickRate
	if rate <= 0 {
		rate = gameCfg.Scene.TPS
	}
	switch {
	case *runTerminal:
		if logCfg.Filename == "" {
			// Log lines would tear through the drawn screen.
			log.SetOutput(io.Discard)
		}
		if err := runTerminalLoop(state, rate, *ticks, log); err != nil {
			log.WithError(err).Fatal("Terminal loop failed")
		}
		return
	case *runHeadless:
		if err := runHeadlessLoop(state, rate, *ticks, log); err != nil {
			log.WithError(err).Fatal("Headless loop failed")
		}
		return
	}

	ebiten.SetWindowSize(int(gameCfg.Scene.Width), int(gameCfg.Scene.Height))
	ebiten.SetWindowTitle("SKPong")
	ebiten.SetTPS(gameCfg.Scene.TPS)

	if err := ebiten.RunGame(NewGame(state)); err != nil {
		log.WithError(err).Fatal("Game exited with error")
	}
}

func runHeadlessLoop(state *sim.State, tickRate, maxTicks int, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := &sim.CommandQueue{}
	loop := headless.NewLoop(state, queue, tickRate, maxTicks, log)

	go func() {
		if err := headless.ReadCommands(ctx, os.Stdin, queue, log); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("Reading commands failed")
		}
	}()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runTerminalLoop(state *sim.State, tickRate, maxTicks int, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	queue := &sim.CommandQueue{}
	host := terminal.NewHost(screen, state.Width, state.Height, queue, log)
	loop := headless.NewLoop(state, queue, tickRate, maxTicks, log)
	loop.OnTick(host.Draw)

	go host.PollEvents()
	go func() {
		select {
		case <-host.Quit():
			loop.Stop()
		case <-ctx.Done():
		}
	}()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
