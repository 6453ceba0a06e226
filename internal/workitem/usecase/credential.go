package usecase

import (
	"context"
	"fmt"

	"task-digest/internal/workitem"
	"task-digest/internal/workitem/repository"
)

func (uc *implUseCase) SetCredential(ctx context.Context, token string) error {
	remote, err := uc.factory.NewRemote(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "workitem.usecase.SetCredential: failed to build remote: %v", err)
		return fmt.Errorf("failed to build work-item client: %w", err)
	}

	uc.mu.Lock()
	uc.token = token
	uc.remote = remote
	uc.gen++
	uc.short.Clear()
	uc.medium.Clear()
	uc.mu.Unlock()

	uc.l.Infof(ctx, "workitem.usecase.SetCredential: client handle ready (empty_token=%t)", token == "")
	return nil
}

func (uc *implUseCase) ClearCredential(ctx context.Context) error {
	return uc.SetCredential(ctx, "")
}

func (uc *implUseCase) Credential() (string, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.token, uc.token != ""
}

// client returns the live handle and the generation it belongs to.
func (uc *implUseCase) client() (repository.Remote, uint64, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.remote == nil {
		return nil, 0, workitem.ErrUnconfigured
	}
	return uc.remote, uc.gen, nil
}
