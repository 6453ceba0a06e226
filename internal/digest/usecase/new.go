package usecase

import (
	"time"

	"task-digest/internal/digest"
	"task-digest/internal/timetrack"
	"task-digest/internal/workitem"
	"task-digest/pkg/datemath"
	pkgLog "task-digest/pkg/log"
)

const (
	DefaultWaitingPrefix     = "[WARTE AUF "
	DefaultMaybeLaterSection = "maybe later"
	DefaultStaleAge          = "6 months ago"
	DefaultAttentionAge      = "1 month ago"
	DefaultAttentionSeconds  = 3600
	DefaultTimeWindow        = "6 months ago"
)

// Config holds the view rules. Ages are relative expressions understood by datemath.
type Config struct {
	WaitingPrefix     string
	MaybeLaterSection string
	StaleAge          string
	AttentionAge      string
	AttentionSeconds  int64
	TimeWindow        string
	Tabs              []digest.Tab
	ExcludedTagIDs    []string
	Clock             func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	items    workitem.UseCase
	times    timetrack.UseCase
	dates    *datemath.Parser
	cfg      Config
	excluded map[string]struct{}
}

var _ digest.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, items workitem.UseCase, times timetrack.UseCase, dates *datemath.Parser, cfg Config) *implUseCase {
	if cfg.WaitingPrefix == "" {
		cfg.WaitingPrefix = DefaultWaitingPrefix
	}
	if cfg.MaybeLaterSection == "" {
		cfg.MaybeLaterSection = DefaultMaybeLaterSection
	}
	if cfg.StaleAge == "" {
		cfg.StaleAge = DefaultStaleAge
	}
	if cfg.AttentionAge == "" {
		cfg.AttentionAge = DefaultAttentionAge
	}
	if cfg.AttentionSeconds <= 0 {
		cfg.AttentionSeconds = DefaultAttentionSeconds
	}
	if cfg.TimeWindow == "" {
		cfg.TimeWindow = DefaultTimeWindow
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludedTagIDs))
	for _, id := range cfg.ExcludedTagIDs {
		excluded[id] = struct{}{}
	}

	return &implUseCase{
		l:        l,
		items:    items,
		times:    times,
		dates:    dates,
		cfg:      cfg,
		excluded: excluded,
	}
}
