package usecase

import (
	"context"
	"slices"

	"task-digest/internal/digest"
	"task-digest/internal/model"
)

func (uc *implUseCase) WaitingFor(ctx context.Context) (digest.WaitingOutput, error) {
	ws, err := uc.items.DefaultWorkspace(ctx)
	if err != nil {
		return digest.WaitingOutput{}, err
	}
	me, err := uc.items.CurrentUser(ctx)
	if err != nil {
		return digest.WaitingOutput{}, err
	}

	items, fromCache, err := uc.everything(ctx, ws.ID)
	if err != nil {
		uc.l.Errorf(ctx, "digest.usecase.WaitingFor: %v", err)
		return digest.WaitingOutput{}, err
	}

	items = slices.DeleteFunc(items, func(it model.WorkItem) bool {
		return !assignedTo(it, me.ID) || !uc.isWaiting(it)
	})

	return digest.WaitingOutput{
		Tasks:     normalizeAll(items, nil),
		FromCache: fromCache,
	}, nil
}
