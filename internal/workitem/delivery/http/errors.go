package http

import (
	"errors"
	"net/http"

	"task-digest/internal/workitem"
	"task-digest/pkg/response"
)

var (
	errMissingOlderThan = response.NewHTTPError(http.StatusBadRequest, "older_than is required (RFC3339)")
	errInvalidOlderThan = response.NewHTTPError(http.StatusBadRequest, "older_than must be an RFC3339 timestamp")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workitem.ErrUnconfigured):
		return response.NewHTTPError(http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, workitem.ErrEmptyWorkspaceID), errors.Is(err, workitem.ErrZeroCutoff):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, workitem.ErrNoWorkspaces):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, workitem.ErrRemote):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return response.ErrInternalServerError
	}
}
