package usecase

import (
	"context"
	"fmt"
	"slices"

	"task-digest/internal/model"
	"task-digest/internal/workitem"
	"task-digest/internal/workitem/repository"
)

func (uc *implUseCase) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	remote, gen, err := uc.client()
	if err != nil {
		return nil, err
	}

	if v, ok := uc.short.Get(keyWorkspaces); ok {
		if ws, ok := v.([]model.Workspace); ok {
			return slices.Clone(ws), nil
		}
	}

	ws, err := remote.ListWorkspaces(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "workitem.usecase.ListWorkspaces: %v", err)
		return nil, fmt.Errorf("%w: list workspaces: %w", workitem.ErrRemote, err)
	}
	uc.memoizeShort(gen, keyWorkspaces, slices.Clone(ws))
	return ws, nil
}

func (uc *implUseCase) DefaultWorkspace(ctx context.Context) (model.Workspace, error) {
	ws, err := uc.ListWorkspaces(ctx)
	if err != nil {
		return model.Workspace{}, err
	}
	if len(ws) == 0 {
		return model.Workspace{}, workitem.ErrNoWorkspaces
	}
	return ws[0], nil
}

func (uc *implUseCase) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	if workspaceID == "" {
		return nil, workitem.ErrEmptyWorkspaceID
	}
	remote, gen, err := uc.client()
	if err != nil {
		return nil, err
	}
	return uc.listProjects(ctx, remote, gen, workspaceID)
}

func (uc *implUseCase) listProjects(ctx context.Context, remote repository.Remote, gen uint64, workspaceID string) ([]model.Project, error) {
	key := keyWorkspaceProjects + workspaceID
	if v, ok := uc.short.Get(key); ok {
		if ps, ok := v.([]model.Project); ok {
			return slices.Clone(ps), nil
		}
	}

	var projects []model.Project
	offset := ""
	for {
		page, err := remote.ListProjects(ctx, workspaceID, repository.ListProjectsOptions{
			Limit:  uc.cfg.PageSize,
			Offset: offset,
		})
		if err != nil {
			uc.l.Errorf(ctx, "workitem.usecase.listProjects: workspace=%s: %v", workspaceID, err)
			return nil, fmt.Errorf("%w: list projects of %s: %w", workitem.ErrRemote, workspaceID, err)
		}
		projects = append(projects, page.Projects...)
		if page.NextOffset == "" {
			break
		}
		offset = page.NextOffset
	}

	uc.memoizeShort(gen, key, slices.Clone(projects))
	return projects, nil
}

func (uc *implUseCase) CurrentUser(ctx context.Context) (model.User, error) {
	remote, gen, err := uc.client()
	if err != nil {
		return model.User{}, err
	}

	if v, ok := uc.short.Get(keyMe); ok {
		if u, ok := v.(model.User); ok {
			return u, nil
		}
	}

	u, err := remote.GetUser(ctx, "me", repository.GetUserOptions{Fields: workitem.UserFields})
	if err != nil {
		uc.l.Errorf(ctx, "workitem.usecase.CurrentUser: %v", err)
		return model.User{}, fmt.Errorf("%w: get current user: %w", workitem.ErrRemote, err)
	}
	uc.memoizeShort(gen, keyMe, u)
	return u, nil
}

// memoizeShort drops the value when the credential changed while it was being fetched.
func (uc *implUseCase) memoizeShort(gen uint64, key string, v any) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.gen != gen {
		return
	}
	uc.short.Set(key, v)
}
