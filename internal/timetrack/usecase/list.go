package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"task-digest/internal/model"
	"task-digest/internal/timetrack"
)

func (uc *implUseCase) ListTimeEntries(ctx context.Context, in timetrack.ListInput) ([]model.TimeEntry, error) {
	if err := validateDate(in.From); err != nil {
		return nil, err
	}
	if err := validateDate(in.To); err != nil {
		return nil, err
	}

	uc.mu.RLock()
	remote := uc.remote
	uc.mu.RUnlock()
	if remote == nil {
		return nil, timetrack.ErrUnconfigured
	}

	key := "time-records:" + in.From + ":" + in.To
	if cached, ok := uc.records.Get(key); ok {
		return slices.Clone(cached), nil
	}

	entries, err := remote.ListTimeRecords(ctx, in.From, in.To)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.ListTimeEntries: from=%s to=%s: %v", in.From, in.To, err)
		return nil, fmt.Errorf("%w: %w", timetrack.ErrRemote, err)
	}
	if entries == nil {
		entries = []model.TimeEntry{}
	}

	uc.records.Set(key, slices.Clone(entries))
	return entries, nil
}

func (uc *implUseCase) SummarizeByTask(entries []model.TimeEntry) []model.TaskTimeSummary {
	return timetrack.Summarize(entries, uc.host)
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return timetrack.ErrInvalidDate
	}
	return nil
}
