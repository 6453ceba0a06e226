package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-digest/config"
	"task-digest/internal/bootstrap"
	"task-digest/internal/warmer"
	asanaRepo "task-digest/internal/workitem/repository/asana"
	workitemUC "task-digest/internal/workitem/usecase"
	"task-digest/pkg/log"
)

// main is the entry point for the cache warmer.
// It shares the API's SQLite file and refreshes the all-items listing on an interval.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting cache warmer...")

	if cfg.Asana.Token == "" {
		logger.Error(ctx, "ASANA_TOKEN is required for the warmer")
		return
	}

	store, err := bootstrap.OpenStore(ctx, logger, cfg.Cache)
	if err != nil {
		logger.Error(ctx, "Failed to open persistent store: ", err)
		return
	}
	defer store.Close()

	workItems := workitemUC.New(logger, asanaRepo.NewFactory(bootstrap.AsanaClientConfig(cfg.Asana)), store, bootstrap.WorkItemConfig(cfg))
	if err := workItems.SetCredential(ctx, cfg.Asana.Token); err != nil {
		logger.Error(ctx, "Failed to install work-item credential: ", err)
		return
	}

	w := warmer.New(logger, workItems, bootstrap.DateParser(ctx, logger, cfg.Digest.Timezone), cfg.Warmer.Interval)
	logger.Infof(ctx, "Warming every %s. Waiting for shutdown signal...", cfg.Warmer.Interval)
	w.Run(ctx)

	logger.Info(ctx, "Cache warmer stopped gracefully")
}
