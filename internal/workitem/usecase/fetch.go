package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"task-digest/internal/model"
	"task-digest/internal/workitem"
	"task-digest/internal/workitem/repository"
)

func (uc *implUseCase) FindItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	if err := validateItemsQuery(workspaceID, cutoff); err != nil {
		return nil, err
	}
	remote, gen, err := uc.client()
	if err != nil {
		return nil, err
	}

	key := itemsKey(workspaceID, cutoff)
	if items, ok := uc.medium.Get(key); ok {
		return workitem.Dedupe(items), nil
	}
	if items, ok := uc.readPersistent(ctx, key); ok {
		items = workitem.Dedupe(items)
		uc.memoizeMedium(gen, key, items)
		return items, nil
	}

	ch := uc.flights.DoChan(flightKey(key, gen), func() (any, error) {
		return uc.fetch(ctx, remote, gen, key, workspaceID, cutoff, false)
	})
	return uc.awaitFlight(ctx, "FindItemsOlderThan", key, ch)
}

func (uc *implUseCase) RefreshItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	if err := validateItemsQuery(workspaceID, cutoff); err != nil {
		return nil, err
	}
	remote, gen, err := uc.client()
	if err != nil {
		return nil, err
	}

	key := itemsKey(workspaceID, cutoff)
	ch := uc.flights.DoChan(refreshFlightKey(key, gen), func() (any, error) {
		return uc.fetch(ctx, remote, gen, key, workspaceID, cutoff, true)
	})
	return uc.awaitFlight(ctx, "RefreshItemsOlderThan", key, ch)
}

func validateItemsQuery(workspaceID string, cutoff time.Time) error {
	if workspaceID == "" {
		return workitem.ErrEmptyWorkspaceID
	}
	if cutoff.IsZero() {
		return workitem.ErrZeroCutoff
	}
	return nil
}

// awaitFlight hands the caller a private copy of the flight's result. A caller that gives
// up leaves the flight running.
func (uc *implUseCase) awaitFlight(ctx context.Context, op, key string, ch <-chan singleflight.Result) ([]model.WorkItem, error) {
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return model.CloneWorkItems(res.Val.([]model.WorkItem)), nil
	case <-ctx.Done():
		uc.l.Infof(ctx, "workitem.usecase.%s: caller gave up on %s, fetch continues", op, key)
		return nil, ctx.Err()
	}
}

// fetch runs inside a flight. It outlives the caller that started it, bounded by FetchTimeout.
// A forced fetch always walks the remote system.
func (uc *implUseCase) fetch(parent context.Context, remote repository.Remote, gen uint64, key, workspaceID string, cutoff time.Time, force bool) ([]model.WorkItem, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), uc.cfg.FetchTimeout)
	defer cancel()

	// A flight that settled just before this one started may already have filled the tier.
	if !force {
		if items, ok := uc.medium.Get(key); ok {
			return workitem.Dedupe(items), nil
		}
	}

	fetchID := uuid.NewString()
	started := time.Now()
	uc.l.Infof(ctx, "workitem.usecase.fetch: id=%s key=%s force=%t started", fetchID, key, force)

	items, err := uc.walk(ctx, remote, gen, workspaceID, cutoff)
	if err != nil {
		uc.l.Errorf(ctx, "workitem.usecase.fetch: id=%s key=%s failed after %s: %v", fetchID, key, time.Since(started), err)
		return nil, err
	}

	uc.memoizeMedium(gen, key, items)
	res := uc.writePersistent(ctx, key, items)
	uc.l.Infof(ctx, "workitem.usecase.fetch: id=%s key=%s items=%d took=%s persist=%s %s",
		fetchID, key, len(items), time.Since(started), res.Status, res.Reason)

	return items, nil
}

// walk pages every non-excluded project and returns the filtered, deduplicated union.
// Per-project results are joined in project order whatever the concurrency.
func (uc *implUseCase) walk(ctx context.Context, remote repository.Remote, gen uint64, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	projects, err := uc.listProjects(ctx, remote, gen, workspaceID)
	if err != nil {
		return nil, err
	}

	kept := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if _, skip := uc.excluded[p.ID]; !skip {
			kept = append(kept, p)
		}
	}

	perProject := make([][]model.WorkItem, len(kept))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.ProjectConcurrency)
	for i, p := range kept {
		g.Go(func() error {
			items, err := uc.walkProject(gctx, remote, p.ID, cutoff)
			if err != nil {
				return err
			}
			perProject[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := []model.WorkItem{}
	for _, items := range perProject {
		all = append(all, items...)
	}
	return workitem.Dedupe(all), nil
}

func (uc *implUseCase) walkProject(ctx context.Context, remote repository.Remote, projectID string, cutoff time.Time) ([]model.WorkItem, error) {
	var out []model.WorkItem
	offset := ""
	for {
		page, err := remote.ListItemsPage(ctx, projectID, repository.ListItemsOptions{
			Limit:  uc.cfg.PageSize,
			Offset: offset,
			Fields: workitem.ItemFields,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: list items of project %s: %w", workitem.ErrRemote, projectID, err)
		}
		for _, it := range page.Items {
			if !it.CreatedAt.IsZero() && it.CreatedAt.Before(cutoff) {
				out = append(out, it)
			}
		}
		if page.NextOffset == "" {
			return out, nil
		}
		offset = page.NextOffset
	}
}

func (uc *implUseCase) CachedItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, bool) {
	if workspaceID == "" || cutoff.IsZero() {
		return nil, false
	}
	items, ok := uc.readPersistent(ctx, itemsKey(workspaceID, cutoff))
	if !ok {
		return nil, false
	}
	return workitem.Dedupe(items), true
}

func (uc *implUseCase) MemoizedItemsOlderThan(workspaceID string, cutoff time.Time) ([]model.WorkItem, bool) {
	if workspaceID == "" || cutoff.IsZero() {
		return nil, false
	}
	items, ok := uc.medium.Get(itemsKey(workspaceID, cutoff))
	if !ok {
		return nil, false
	}
	return workitem.Dedupe(items), true
}

// memoizeMedium stores a private copy, unless the credential changed mid-flight.
// The read lock spans the check and the write so SetCredential cannot clear in between.
func (uc *implUseCase) memoizeMedium(gen uint64, key string, items []model.WorkItem) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.gen != gen {
		return
	}
	uc.medium.Set(key, model.CloneWorkItems(items))
}

func (uc *implUseCase) ClearPersistentCache(ctx context.Context) int {
	removed := 0
	for _, prefix := range []string{workitem.KeyPrefix, workitem.LegacyKeyPrefix} {
		n, err := uc.store.RemoveMatchingPrefix(ctx, prefix)
		if err != nil {
			uc.l.Warnf(ctx, "workitem.usecase.ClearPersistentCache: prefix=%s: %v", prefix, err)
		}
		removed += n
	}
	uc.short.Clear()
	uc.medium.Clear()

	uc.l.Infof(ctx, "workitem.usecase.ClearPersistentCache: removed=%d", removed)
	return removed
}
