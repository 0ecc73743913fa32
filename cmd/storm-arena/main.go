// Command storm-arena runs the arena shooter in a terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/storm-arena/config"
	"github.com/lixenwraith/storm-arena/core"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/input"
	"github.com/lixenwraith/storm-arena/render"
	"github.com/lixenwraith/storm-arena/status"
	"github.com/lixenwraith/storm-arena/system"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "storm-arena: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, closer, err := setupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panics anywhere below restore the terminal before reporting
	core.SetCrashFinalizer(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	metrics := status.NewRegistry()
	world := engine.NewWorld(cfg.WorldConfig(), engine.NewRand(cfg.Seed), logger, metrics)
	sim := system.NewSimulation(world)
	sim.Start()

	renderer := render.NewRenderer(screen, metrics)
	g := &game{
		screen:   screen,
		sim:      sim,
		renderer: renderer,
		handler:  input.NewHandler(sim, renderer, keys),
		fps:      metrics.Floats.Get(status.KeyFPS),
	}

	logger.WithFields(logrus.Fields{
		"seed": cfg.Seed,
		"bots": cfg.Bots,
		"fps":  cfg.FPS,
	}).Info("storm-arena started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)
	eg.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		// PollEvent returns nil once the screen is finalized
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		defer screen.Fini()

		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()
		return g.run(ctx, events, ticker.C)
	})

	err = eg.Wait()
	core.SetCrashFinalizer(nil)
	logger.WithFields(logrus.Fields(metrics.Snapshot())).WithField("kills", sim.Kills()).Info("storm-arena stopped")
	return err
}
