package usecase

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"task-digest/internal/digest"
	"task-digest/internal/model"
)

func (uc *implUseCase) Critical(ctx context.Context, in digest.CriticalInput) (digest.CriticalOutput, error) {
	assignee := strings.TrimSpace(in.Assignee)
	if assignee == "" {
		assignee = digest.AssigneeAll
	}

	ws, err := uc.items.DefaultWorkspace(ctx)
	if err != nil {
		return digest.CriticalOutput{}, err
	}

	now := uc.cfg.Clock()
	staleCutoff, err := uc.dates.Parse(uc.cfg.StaleAge, now)
	if err != nil {
		uc.l.Errorf(ctx, "digest.usecase.Critical.Parse: %v", err)
		return digest.CriticalOutput{}, err
	}
	attentionCutoff, err := uc.dates.Parse(uc.cfg.AttentionAge, now)
	if err != nil {
		uc.l.Errorf(ctx, "digest.usecase.Critical.Parse: %v", err)
		return digest.CriticalOutput{}, err
	}

	var (
		stale, recent []model.WorkItem
		totals        map[string]int64
		timeOK        bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stale, err = uc.items.FindItemsOlderThan(gctx, ws.ID, staleCutoff)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.items.FindItemsOlderThan(gctx, ws.ID, attentionCutoff)
		return err
	})
	g.Go(func() error {
		totals, timeOK = uc.timeTotals(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "digest.usecase.Critical: %v", err)
		return digest.CriticalOutput{}, err
	}

	stale = slices.DeleteFunc(stale, func(it model.WorkItem) bool {
		return !isOpen(it) || uc.isMaybeLater(it)
	})
	recent = slices.DeleteFunc(recent, func(it model.WorkItem) bool {
		return !isOpen(it) || uc.isMaybeLater(it) || totals[it.ID] <= uc.cfg.AttentionSeconds
	})

	return digest.CriticalOutput{
		Assignees:     assigneeOptions(stale, recent),
		Stale:         normalizeAll(filterAssignee(stale, assignee), totals),
		OverBudget:    normalizeAll(filterAssignee(recent, assignee), totals),
		TimeAvailable: timeOK,
	}, nil
}

// filterAssignee returns a new slice; the input is left intact.
func filterAssignee(items []model.WorkItem, assignee string) []model.WorkItem {
	out := make([]model.WorkItem, 0, len(items))
	for _, it := range items {
		switch {
		case assignee == digest.AssigneeAll,
			assignee == digest.AssigneeUnassigned && it.Assignee == nil,
			assignedTo(it, assignee):
			out = append(out, it)
		}
	}
	return out
}

// assigneeOptions lists the distinct named assignees of both lists, sorted by name.
func assigneeOptions(lists ...[]model.WorkItem) []digest.AssigneeOption {
	seen := map[string]struct{}{}
	out := []digest.AssigneeOption{}
	for _, items := range lists {
		for _, it := range items {
			if it.Assignee == nil || it.Assignee.ID == "" || it.Assignee.Name == "" {
				continue
			}
			if _, ok := seen[it.Assignee.ID]; ok {
				continue
			}
			seen[it.Assignee.ID] = struct{}{}
			out = append(out, digest.AssigneeOption{ID: it.Assignee.ID, Name: it.Assignee.Name})
		}
	}
	slices.SortFunc(out, func(a, b digest.AssigneeOption) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return out
}
