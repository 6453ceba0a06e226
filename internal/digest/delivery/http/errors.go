package http

import (
	"errors"
	"net/http"

	"task-digest/internal/digest"
	"task-digest/internal/workitem"
	"task-digest/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, digest.ErrUnknownTab):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, workitem.ErrUnconfigured):
		return response.NewHTTPError(http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, workitem.ErrNoWorkspaces):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, workitem.ErrRemote):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return response.ErrInternalServerError
	}
}
