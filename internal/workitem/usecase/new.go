package usecase

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"task-digest/internal/model"
	"task-digest/internal/workitem"
	"task-digest/internal/workitem/repository"
	"task-digest/pkg/kvstore"
	pkgLog "task-digest/pkg/log"
	"task-digest/pkg/memo"
)

type implUseCase struct {
	l       pkgLog.Logger
	factory repository.RemoteFactory
	store   kvstore.Store
	cfg     Config

	excluded map[string]struct{}

	// mu guards the credential and the handle built from it. gen advances on every
	// credential change so flights started under an older handle never feed the memo tiers.
	mu     sync.RWMutex
	token  string
	remote repository.Remote
	gen    uint64

	short   *memo.Tier[any]
	medium  *memo.Tier[[]model.WorkItem]
	flights singleflight.Group
}

var _ workitem.UseCase = (*implUseCase)(nil)

// New creates a work-item UseCase. The engine is unconfigured until SetCredential is called.
func New(l pkgLog.Logger, factory repository.RemoteFactory, store kvstore.Store, cfg Config) *implUseCase {
	cfg = cfg.withDefaults()

	excluded := make(map[string]struct{}, len(cfg.ExcludedProjectIDs))
	for _, id := range cfg.ExcludedProjectIDs {
		excluded[id] = struct{}{}
	}

	return &implUseCase{
		l:        l,
		factory:  factory,
		store:    store,
		cfg:      cfg,
		excluded: excluded,
		short:    memo.New[any](cfg.MemoSize, cfg.ShortTTL),
		medium:   memo.New[[]model.WorkItem](cfg.MemoSize, cfg.MediumTTL),
	}
}
