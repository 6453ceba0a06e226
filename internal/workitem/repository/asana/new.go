package asana

import (
	"context"

	"task-digest/internal/workitem/repository"
	pkgAsana "task-digest/pkg/asana"
)

type implRemote struct {
	client *pkgAsana.Client
}

// Factory builds REST-backed remotes sharing one base configuration.
type Factory struct {
	cfg pkgAsana.Config
}

// NewFactory returns a factory; cfg.Token is ignored and replaced per remote.
func NewFactory(cfg pkgAsana.Config) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) NewRemote(ctx context.Context, token string) (repository.Remote, error) {
	cfg := f.cfg
	cfg.Token = token
	return New(pkgAsana.NewClient(context.WithoutCancel(ctx), cfg)), nil
}

// New wraps an existing client.
func New(client *pkgAsana.Client) repository.Remote {
	return &implRemote{client: client}
}
