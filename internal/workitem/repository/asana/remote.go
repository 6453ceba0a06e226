package asana

import (
	"context"
	"time"

	"task-digest/internal/model"
	"task-digest/internal/workitem/repository"
	pkgAsana "task-digest/pkg/asana"
)

func (r *implRemote) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	raw, err := r.client.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Workspace, 0, len(raw))
	for _, w := range raw {
		out = append(out, model.Workspace{ID: w.GID, Name: w.Name})
	}
	return out, nil
}

func (r *implRemote) ListProjects(ctx context.Context, workspaceID string, opt repository.ListProjectsOptions) (repository.ProjectPage, error) {
	page, err := r.client.ListProjects(ctx, workspaceID, pkgAsana.ListOptions{Limit: opt.Limit, Offset: opt.Offset})
	if err != nil {
		return repository.ProjectPage{}, err
	}
	projects := make([]model.Project, 0, len(page.Data))
	for _, p := range page.Data {
		projects = append(projects, model.Project{ID: p.GID, Name: p.Name})
	}
	return repository.ProjectPage{Projects: projects, NextOffset: page.NextOffset()}, nil
}

func (r *implRemote) ListItemsPage(ctx context.Context, projectID string, opt repository.ListItemsOptions) (repository.ItemPage, error) {
	page, err := r.client.GetTasksForProject(ctx, projectID, pkgAsana.TaskListOptions{
		Limit:     opt.Limit,
		Offset:    opt.Offset,
		OptFields: opt.Fields,
	})
	if err != nil {
		return repository.ItemPage{}, err
	}
	items := make([]model.WorkItem, 0, len(page.Data))
	for _, t := range page.Data {
		items = append(items, toWorkItem(t))
	}
	return repository.ItemPage{Items: items, NextOffset: page.NextOffset()}, nil
}

func (r *implRemote) GetUser(ctx context.Context, userID string, opt repository.GetUserOptions) (model.User, error) {
	u, err := r.client.GetUser(ctx, userID, opt.Fields)
	if err != nil {
		return model.User{}, err
	}
	return model.User{ID: u.GID, Name: u.Name}, nil
}

func toWorkItem(t pkgAsana.Task) model.WorkItem {
	it := model.WorkItem{
		ID:        t.GID,
		Title:     t.Name,
		CreatedAt: parseTime(t.CreatedAt),
		Permalink: t.PermalinkURL,
		Completed: t.Completed,
	}
	if t.Assignee != nil {
		it.Assignee = &model.User{ID: t.Assignee.GID, Name: t.Assignee.Name}
	}
	if t.Memberships != nil {
		it.Memberships = make([]model.Membership, 0, len(t.Memberships))
		for _, m := range t.Memberships {
			var mm model.Membership
			if m.Project != nil {
				mm.Project = &model.ProjectRef{ID: m.Project.GID, Name: m.Project.Name}
			}
			if m.Section != nil {
				mm.Section = &model.SectionRef{ID: m.Section.GID, Name: m.Section.Name}
			}
			it.Memberships = append(it.Memberships, mm)
		}
	}
	if t.Tags != nil {
		it.Tags = make([]model.Tag, 0, len(t.Tags))
		for _, tag := range t.Tags {
			it.Tags = append(it.Tags, model.Tag{ID: tag.GID, Name: tag.Name})
		}
	}
	return it
}

// parseTime returns the zero time for missing or malformed timestamps.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
