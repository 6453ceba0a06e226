package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-digest/config"
	"task-digest/internal/bootstrap"
	digestUC "task-digest/internal/digest/usecase"
	"task-digest/internal/httpserver"
	"task-digest/internal/middleware"
	everhourRepo "task-digest/internal/timetrack/repository/everhour"
	timetrackUC "task-digest/internal/timetrack/usecase"
	asanaRepo "task-digest/internal/workitem/repository/asana"
	workitemUC "task-digest/internal/workitem/usecase"
	"task-digest/pkg/log"
)

// @title       Task Digest API
// @description Aggregates work items across projects, joins tracked time, and serves digest views.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Digest...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistent tier
	store, err := bootstrap.OpenStore(ctx, logger, cfg.Cache)
	if err != nil {
		logger.Error(ctx, "Failed to open persistent store: ", err)
		return
	}
	defer store.Close()

	// 4. Work-item engine
	workItems := workitemUC.New(logger, asanaRepo.NewFactory(bootstrap.AsanaClientConfig(cfg.Asana)), store, bootstrap.WorkItemConfig(cfg))
	if cfg.Asana.Token != "" {
		if err := workItems.SetCredential(ctx, cfg.Asana.Token); err != nil {
			logger.Warnf(ctx, "Work-item credential rejected: %v", err)
		} else {
			logger.Info(ctx, "Work-item credential installed from config")
		}
	} else {
		logger.Warn(ctx, "ASANA_TOKEN not set; use PUT /api/v1/credentials/workitem")
	}

	// 5. Time-tracking aggregator (optional)
	timeEntries := timetrackUC.New(logger, everhourRepo.NewFactory(bootstrap.EverhourClientConfig(cfg.Everhour)), timetrackUC.Config{
		TTL:          cfg.Cache.ShortTTL,
		MemoSize:     cfg.Cache.MemoSize,
		WorkItemHost: cfg.Everhour.WorkItemHost,
	})
	if cfg.Everhour.APIKey != "" {
		if err := timeEntries.SetAPIKey(ctx, cfg.Everhour.APIKey); err != nil {
			logger.Warnf(ctx, "Time-tracking key rejected: %v", err)
		}
	} else {
		logger.Warn(ctx, "EVERHOUR_API_KEY not set; digest views run without tracked time")
	}

	// 6. Digest views
	dates := bootstrap.DateParser(ctx, logger, cfg.Digest.Timezone)
	digests := digestUC.New(logger, workItems, timeEntries, dates, bootstrap.DigestConfig(cfg.Digest))

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMin,
			MaxClients:        cfg.RateLimit.MaxClients,
		},
		WorkItemUC:  workItems,
		TimeTrackUC: timeEntries,
		DigestUC:    digests,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
