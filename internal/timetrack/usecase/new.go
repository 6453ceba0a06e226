package usecase

import (
	"sync"
	"time"

	"task-digest/internal/model"
	"task-digest/internal/timetrack"
	"task-digest/internal/timetrack/repository"
	pkgLog "task-digest/pkg/log"
	"task-digest/pkg/memo"
)

const DefaultTTL = 60 * time.Second

// Config tunes the aggregator.
type Config struct {
	TTL          time.Duration
	MemoSize     int
	WorkItemHost string // Hostname substring of work-item URLs; defaults to timetrack.DefaultWorkItemHost
}

type implUseCase struct {
	l       pkgLog.Logger
	factory repository.RemoteFactory
	host    string

	mu     sync.RWMutex
	apiKey string
	remote repository.Remote

	records *memo.Tier[[]model.TimeEntry]
}

var _ timetrack.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, factory repository.RemoteFactory, cfg Config) *implUseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.WorkItemHost == "" {
		cfg.WorkItemHost = timetrack.DefaultWorkItemHost
	}
	return &implUseCase{
		l:       l,
		factory: factory,
		host:    cfg.WorkItemHost,
		records: memo.New[[]model.TimeEntry](cfg.MemoSize, cfg.TTL),
	}
}
