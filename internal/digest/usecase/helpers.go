package usecase

import (
	"context"
	"strings"

	"task-digest/internal/digest"
	"task-digest/internal/model"
	"task-digest/internal/timetrack"
)

// everything returns every item of the workspace, preferring a fresh persisted snapshot.
func (uc *implUseCase) everything(ctx context.Context, workspaceID string) ([]model.WorkItem, bool, error) {
	cutoff := uc.dates.FarFuture()
	if items, ok := uc.items.CachedItemsOlderThan(ctx, workspaceID, cutoff); ok {
		return items, true, nil
	}
	items, err := uc.items.FindItemsOlderThan(ctx, workspaceID, cutoff)
	if err != nil {
		return nil, false, err
	}
	return items, false, nil
}

// timeTotals returns tracked seconds per task over the configured window. Any failure of
// the time-tracking side yields an empty map and false; the views still render.
func (uc *implUseCase) timeTotals(ctx context.Context) (map[string]int64, bool) {
	now := uc.cfg.Clock()
	from, err := uc.dates.Parse(uc.cfg.TimeWindow, now)
	if err != nil {
		uc.l.Warnf(ctx, "digest.usecase.timeTotals: window %q: %v", uc.cfg.TimeWindow, err)
		return map[string]int64{}, false
	}

	entries, err := uc.times.ListTimeEntries(ctx, timetrack.ListInput{
		From: uc.dates.DateString(from),
		To:   uc.dates.DateString(now),
	})
	if err != nil {
		uc.l.Warnf(ctx, "digest.usecase.timeTotals: continuing without time: %v", err)
		return map[string]int64{}, false
	}
	return timetrack.TotalsByTask(uc.times.SummarizeByTask(entries)), true
}

func (uc *implUseCase) isWaiting(it model.WorkItem) bool {
	return strings.HasPrefix(strings.TrimSpace(it.Title), uc.cfg.WaitingPrefix)
}

func (uc *implUseCase) isMaybeLater(it model.WorkItem) bool {
	for _, m := range it.Memberships {
		if m.Section != nil && strings.EqualFold(strings.TrimSpace(m.Section.Name), uc.cfg.MaybeLaterSection) {
			return true
		}
	}
	return false
}

func isOpen(it model.WorkItem) bool {
	return it.Completed == nil || !*it.Completed
}

func assignedTo(it model.WorkItem, userID string) bool {
	return it.Assignee != nil && it.Assignee.ID == userID
}

func normalize(it model.WorkItem, totals map[string]int64) digest.Task {
	t := digest.Task{
		ID:                it.ID,
		Title:             it.Title,
		CreatedAt:         it.CreatedAt,
		URL:               it.Permalink,
		TimeWorkedSeconds: totals[it.ID],
	}
	if it.Assignee != nil {
		t.AssigneeID = it.Assignee.ID
		t.AssigneeFullName = it.Assignee.Name
		t.AssigneeFirstName = firstName(it.Assignee.Name)
	}

	seen := make(map[string]struct{}, len(it.Memberships))
	for _, m := range it.Memberships {
		if m.Project == nil {
			continue
		}
		if _, ok := seen[m.Project.ID]; ok {
			continue
		}
		seen[m.Project.ID] = struct{}{}
		t.Projects = append(t.Projects, digest.ProjectRef{ID: m.Project.ID, Name: m.Project.Name})
	}
	return t
}

func normalizeAll(items []model.WorkItem, totals map[string]int64) []digest.Task {
	out := make([]digest.Task, 0, len(items))
	for _, it := range items {
		out = append(out, normalize(it, totals))
	}
	return out
}

func firstName(full string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(full), " ")
	return first
}
