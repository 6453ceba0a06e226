package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"task-digest/internal/model"
	"task-digest/internal/workitem"
	"task-digest/pkg/kvstore"
)

// readPersistent returns a fresh snapshot. Absent, stale, unreadable and corrupt records are
// all misses; stale ones stay in place until the next write supersedes them.
func (uc *implUseCase) readPersistent(ctx context.Context, key string) ([]model.WorkItem, bool) {
	raw, ok, err := uc.store.Get(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "workitem.usecase.readPersistent: key=%s: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var rec persistedRecord[[]model.WorkItem]
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		uc.l.Warnf(ctx, "workitem.usecase.readPersistent: key=%s: corrupt record: %v", key, err)
		return nil, false
	}
	if rec.TS <= 0 || rec.Data == nil {
		return nil, false
	}

	age := uc.cfg.Clock().UnixMilli() - rec.TS
	if age > uc.cfg.PersistentTTL.Milliseconds() {
		return nil, false
	}
	return rec.Data, true
}

// writePersistent never fails the caller; the result tells whether the snapshot landed.
func (uc *implUseCase) writePersistent(ctx context.Context, key string, items []model.WorkItem) workitem.WriteResult {
	raw, err := json.Marshal(persistedRecord[[]model.WorkItem]{
		TS:   uc.cfg.Clock().UnixMilli(),
		Data: items,
	})
	if err != nil {
		uc.l.Warnf(ctx, "workitem.usecase.writePersistent: key=%s: marshal: %v", key, err)
		return workitem.Skipped("serialization failed: " + err.Error())
	}

	if err := uc.store.Set(ctx, key, string(raw)); err != nil {
		uc.l.Warnf(ctx, "workitem.usecase.writePersistent: key=%s: %v", key, err)
		if errors.Is(err, kvstore.ErrQuotaExceeded) {
			return workitem.Skipped("quota exceeded")
		}
		return workitem.Skipped(err.Error())
	}
	return workitem.Written()
}
