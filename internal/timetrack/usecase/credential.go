package usecase

import (
	"context"
)

func (uc *implUseCase) SetAPIKey(ctx context.Context, key string) error {
	uc.mu.Lock()
	uc.apiKey = key
	if key == "" {
		uc.remote = nil
	} else {
		uc.remote = uc.factory.NewRemote(key)
	}
	uc.mu.Unlock()

	uc.records.Clear()
	uc.l.Infof(ctx, "timetrack.usecase.SetAPIKey: configured=%t", key != "")
	return nil
}

func (uc *implUseCase) APIKey() (string, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.apiKey, uc.apiKey != ""
}
