// Package warmer keeps the persisted all-items listing fresh so the cached-first views
// rarely wait on a full walk.
package warmer

import (
	"context"
	"time"

	"task-digest/internal/workitem"
	"task-digest/pkg/datemath"
	"task-digest/pkg/log"
)

const DefaultInterval = 5 * time.Minute

type Warmer struct {
	l        log.Logger
	uc       workitem.UseCase
	dates    *datemath.Parser
	interval time.Duration
}

func New(l log.Logger, uc workitem.UseCase, dates *datemath.Parser, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Warmer{
		l:        l,
		uc:       uc,
		dates:    dates,
		interval: interval,
	}
}

// Run warms once immediately and then on every tick until ctx is cancelled.
func (w *Warmer) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.WarmOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// WarmOnce re-walks every item of the default workspace past the cache tiers, so the
// persisted listing is rewritten each tick. Failures are logged and retried on the next tick.
func (w *Warmer) WarmOnce(ctx context.Context) (int, error) {
	ws, err := w.uc.DefaultWorkspace(ctx)
	if err != nil {
		w.l.Warnf(ctx, "warmer.WarmOnce.DefaultWorkspace: %v", err)
		return 0, err
	}

	start := time.Now()
	items, err := w.uc.RefreshItemsOlderThan(ctx, ws.ID, w.dates.FarFuture())
	if err != nil {
		w.l.Warnf(ctx, "warmer.WarmOnce.RefreshItemsOlderThan: workspace=%s: %v", ws.ID, err)
		return 0, err
	}

	w.l.Infof(ctx, "warmer.WarmOnce: workspace=%s items=%d took=%s", ws.ID, len(items), time.Since(start))
	return len(items), nil
}
