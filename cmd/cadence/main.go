package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/cadence/adapter/cli"
	"github.com/felixgeelhaar/cadence/internal/app"
	"github.com/felixgeelhaar/cadence/pkg/config"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// Score and recommend still work without storage.
			logger.Warn("failed to initialize container, running without persistence", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()
		cli.SetApp(&cli.App{
			OptimizeBacklogHandler:           container.OptimizeBacklogHandler,
			SynthesizeRecommendationsHandler: container.SynthesizeRecommendationsHandler,
			GetPlanHandler:                   container.GetPlanHandler,
			ListPlansHandler:                 container.ListPlansHandler,
			ListWorkItemsHandler:             container.ListWorkItemsHandler,
			ScoringEngine:                    container.ScoringEngine,
			PlanCache:                        container.PlanCache,
			DefaultCapacity:                  cfg.DefaultCapacity,
		})
	}

	cli.Execute()
}
