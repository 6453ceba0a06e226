package http

import (
	"errors"
	"net/http"

	"task-digest/internal/timetrack"
	"task-digest/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timetrack.ErrUnconfigured):
		return response.NewHTTPError(http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, timetrack.ErrInvalidDate):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, timetrack.ErrRemote):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return response.ErrInternalServerError
	}
}
