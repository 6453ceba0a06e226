package http

import (
	"task-digest/internal/digest"
	"task-digest/pkg/log"
)

type handler struct {
	l  log.Logger
	uc digest.UseCase
}

// New creates a new HTTP handler for the digest views.
func New(l log.Logger, uc digest.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
