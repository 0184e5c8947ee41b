package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/TextMaple_Go/internal/catalog"
	"github.com/osse101/TextMaple_Go/internal/config"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/game"
	"github.com/osse101/TextMaple_Go/internal/logger"
	"github.com/osse101/TextMaple_Go/internal/metrics"
	"github.com/osse101/TextMaple_Go/internal/persistence"
	"github.com/osse101/TextMaple_Go/internal/server"
	"github.com/osse101/TextMaple_Go/internal/tui"
	"github.com/osse101/TextMaple_Go/internal/utils"
	"github.com/osse101/TextMaple_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "textmaple: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logger.FromContext(context.Background())
	for _, w := range warnings {
		log.Warn(LogMsgConfigWarning, "warning", w)
	}
	log.Info(LogMsgStarting, "backend", cfg.SaveBackend, "slot", cfg.SaveSlot, "autosave", cfg.AutosaveInterval.String(), "catalog", cfg.CatalogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}

	store, pool, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return err
	}

	saves := persistence.NewService(store, cfg.SaveSlot, bus)
	session, loaded := game.New(ctx, cat, saves, game.Options{
		Rand:         utils.NewRand(cfg.RNGSeed),
		Publisher:    bus,
		StartingMeso: cfg.StartingMeso,
	})
	if loaded.Err != nil {
		log.Warn(LogMsgSaveUnreadable, "slot", cfg.SaveSlot, "error", loaded.Err)
	}

	// The UI owns the lifetime: when it returns, everything else winds down.
	g, gctx := errgroup.WithContext(ctx)
	uiCtx, uiDone := context.WithCancel(gctx)
	defer uiDone()

	if cfg.AutosaveEnabled() {
		autosave := worker.NewAutosaveWorker(session, cfg.AutosaveInterval)
		g.Go(func() error { return autosave.Run(uiCtx) })
	}

	if cfg.MetricsEnabled() {
		var readiness server.ReadinessChecker
		if pool != nil {
			readiness = pool
		}
		srv := server.NewServer(cfg.MetricsAddr, readiness)
		g.Go(func() error { return serveMetrics(uiCtx, srv) })
	}

	g.Go(func() error {
		defer uiDone()
		return tui.Run(uiCtx, session)
	})

	err = g.Wait()

	// Interrupted without Quit: keep the progress anyway.
	if !session.Closed() {
		if saveErr := session.Save(context.Background()); saveErr != nil {
			log.Error(LogMsgFinalSaveFailed, "error", saveErr)
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(LogMsgStopped)
	return nil
}
