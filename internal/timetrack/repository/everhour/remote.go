package everhour

import (
	"context"
	"strconv"

	"task-digest/internal/model"
	"task-digest/internal/timetrack/repository"
	pkgEverhour "task-digest/pkg/everhour"
)

type implRemote struct {
	client *pkgEverhour.Client
}

// Factory builds remotes sharing one base configuration.
type Factory struct {
	cfg pkgEverhour.Config
}

func NewFactory(cfg pkgEverhour.Config) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) NewRemote(apiKey string) repository.Remote {
	cfg := f.cfg
	cfg.APIKey = apiKey
	return &implRemote{client: pkgEverhour.NewClient(cfg)}
}

func (r *implRemote) ListTimeRecords(ctx context.Context, from, to string) ([]model.TimeEntry, error) {
	records, err := r.client.ListAllTimeRecords(ctx, pkgEverhour.TimeRange{From: from, To: to})
	if err != nil {
		return nil, err
	}
	out := make([]model.TimeEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, toTimeEntry(rec))
	}
	return out, nil
}

func toTimeEntry(rec pkgEverhour.TimeRecord) model.TimeEntry {
	e := model.TimeEntry{
		ID:      strconv.FormatInt(rec.ID, 10),
		UserID:  strconv.FormatInt(rec.User, 10),
		Seconds: max(rec.Time, 0),
		Date:    rec.Date,
	}
	if rec.Task != nil {
		e.TaskID = rec.Task.ID
		e.TaskURL = rec.Task.URL
	}
	return e
}
