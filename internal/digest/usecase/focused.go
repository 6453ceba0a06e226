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

func (uc *implUseCase) Tabs() []digest.Tab {
	out := make([]digest.Tab, 0, len(uc.cfg.Tabs)+1)
	out = append(out, uc.cfg.Tabs...)
	return append(out, digest.Tab{ID: digest.OtherTabID, Label: digest.OtherTabLabel})
}

func (uc *implUseCase) Focused(ctx context.Context, in digest.FocusedInput) (digest.FocusedOutput, error) {
	tabID := strings.TrimSpace(in.TabID)
	if tabID == "" {
		tabID = uc.Tabs()[0].ID
	}

	var tab *digest.Tab
	if tabID != digest.OtherTabID {
		i := slices.IndexFunc(uc.cfg.Tabs, func(t digest.Tab) bool { return t.ID == tabID })
		if i < 0 {
			return digest.FocusedOutput{}, digest.ErrUnknownTab
		}
		tab = &uc.cfg.Tabs[i]
	}

	ws, err := uc.items.DefaultWorkspace(ctx)
	if err != nil {
		return digest.FocusedOutput{}, err
	}
	me, err := uc.items.CurrentUser(ctx)
	if err != nil {
		return digest.FocusedOutput{}, err
	}

	var (
		items     []model.WorkItem
		fromCache bool
		totals    map[string]int64
		timeOK    bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, fromCache, err = uc.everything(gctx, ws.ID)
		return err
	})
	g.Go(func() error {
		totals, timeOK = uc.timeTotals(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "digest.usecase.Focused: %v", err)
		return digest.FocusedOutput{}, err
	}

	items = slices.DeleteFunc(items, func(it model.WorkItem) bool {
		if !assignedTo(it, me.ID) || uc.isWaiting(it) {
			return true
		}
		if tab != nil {
			return !matchesTab(it, *tab)
		}
		return uc.matchesAnyTab(it) || uc.hasExcludedTag(it)
	})

	return digest.FocusedOutput{
		TabID:         tabID,
		Groups:        groupByProject(normalizeAll(items, totals), tab),
		FromCache:     fromCache,
		TimeAvailable: timeOK,
	}, nil
}

func (uc *implUseCase) matchesAnyTab(it model.WorkItem) bool {
	return slices.ContainsFunc(uc.cfg.Tabs, func(t digest.Tab) bool { return matchesTab(it, t) })
}

func (uc *implUseCase) hasExcludedTag(it model.WorkItem) bool {
	return slices.ContainsFunc(it.Tags, func(t model.Tag) bool {
		_, ok := uc.excluded[t.ID]
		return ok
	})
}

func matchesTab(it model.WorkItem, tab digest.Tab) bool {
	if len(tab.ProjectIDs) > 0 && !slices.ContainsFunc(it.Memberships, func(m model.Membership) bool {
		return m.Project != nil && slices.Contains(tab.ProjectIDs, m.Project.ID)
	}) {
		return false
	}
	if len(tab.IncludeTagIDs) > 0 && !hasAnyTag(it, tab.IncludeTagIDs) {
		return false
	}
	return !hasAnyTag(it, tab.ExcludeTagIDs)
}

func hasAnyTag(it model.WorkItem, ids []string) bool {
	return slices.ContainsFunc(it.Tags, func(t model.Tag) bool { return slices.Contains(ids, t.ID) })
}

// groupByProject files every task under each of its projects, or under the no-project
// bucket. A tab with projects keeps only the groups of those projects.
func groupByProject(tasks []digest.Task, tab *digest.Tab) []digest.ProjectGroup {
	var order []string
	groups := map[string]*digest.ProjectGroup{}
	add := func(id, name string, t digest.Task) {
		g, ok := groups[id]
		if !ok {
			g = &digest.ProjectGroup{ID: id, Name: name}
			groups[id] = g
			order = append(order, id)
		}
		g.Tasks = append(g.Tasks, t)
	}

	for _, t := range tasks {
		if len(t.Projects) == 0 {
			add(digest.NoProjectID, digest.NoProjectName, t)
			continue
		}
		for _, p := range t.Projects {
			add(p.ID, p.Name, t)
		}
	}

	out := make([]digest.ProjectGroup, 0, len(order))
	for _, id := range order {
		if tab != nil && len(tab.ProjectIDs) > 0 && !slices.Contains(tab.ProjectIDs, id) {
			continue
		}
		out = append(out, *groups[id])
	}
	slices.SortStableFunc(out, func(a, b digest.ProjectGroup) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
