// Package bootstrap turns loaded configuration into the engine's building blocks for the binaries.
package bootstrap

import (
	"context"

	"task-digest/config"
	"task-digest/internal/digest"
	digestUC "task-digest/internal/digest/usecase"
	workitemUC "task-digest/internal/workitem/usecase"
	pkgAsana "task-digest/pkg/asana"
	"task-digest/pkg/datemath"
	pkgEverhour "task-digest/pkg/everhour"
	"task-digest/pkg/kvstore"
	"task-digest/pkg/kvstore/memory"
	"task-digest/pkg/kvstore/sqlite"
	"task-digest/pkg/log"
)

// OpenStore opens the SQLite file when configured, otherwise a quota-bounded in-memory store.
func OpenStore(ctx context.Context, l log.Logger, cfg config.CacheConfig) (kvstore.Store, error) {
	if cfg.SQLitePath == "" {
		l.Warn(ctx, "cache.sqlite_path not set; persisted listings will not survive a restart")
		return memory.New(cfg.MemoryQuotaBytes), nil
	}
	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Persistent tier: %s", cfg.SQLitePath)
	return store, nil
}

func AsanaClientConfig(cfg config.AsanaConfig) pkgAsana.Config {
	return pkgAsana.Config{
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        cfg.MaxRetries,
		RetryDelay:        cfg.RetryDelay,
	}
}

func EverhourClientConfig(cfg config.EverhourConfig) pkgEverhour.Config {
	return pkgEverhour.Config{
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        cfg.MaxRetries,
		PageSize:          cfg.PageSize,
	}
}

func WorkItemConfig(cfg *config.Config) workitemUC.Config {
	return workitemUC.Config{
		ShortTTL:           cfg.Cache.ShortTTL,
		MediumTTL:          cfg.Cache.MediumTTL,
		PersistentTTL:      cfg.Cache.PersistentTTL,
		MemoSize:           cfg.Cache.MemoSize,
		PageSize:           cfg.Asana.PageSize,
		ProjectConcurrency: cfg.Asana.ProjectConcurrency,
		FetchTimeout:       cfg.Cache.FetchTimeout,
		ExcludedProjectIDs: cfg.Asana.ExcludedProjectIDs,
	}
}

func DigestConfig(cfg config.DigestConfig) digestUC.Config {
	tabs := make([]digest.Tab, 0, len(cfg.Tabs))
	for _, t := range cfg.Tabs {
		tabs = append(tabs, digest.Tab{
			ID:            t.ID,
			Label:         t.Label,
			ProjectIDs:    t.ProjectIDs,
			IncludeTagIDs: t.IncludeTagIDs,
			ExcludeTagIDs: t.ExcludeTagIDs,
		})
	}
	return digestUC.Config{
		WaitingPrefix:     cfg.WaitingPrefix,
		MaybeLaterSection: cfg.MaybeLaterSection,
		Tabs:              tabs,
		ExcludedTagIDs:    cfg.ExcludedTagIDs,
	}
}

// DateParser resolves cutoffs in tz, falling back to UTC when tz is unknown.
func DateParser(ctx context.Context, l log.Logger, tz string) *datemath.Parser {
	dates, err := datemath.NewParser(tz)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", tz, err)
		dates, _ = datemath.NewParser("UTC")
	}
	return dates
}
