package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-digest/pkg/response"
)

func (h *handler) processSetCredentialReq(c *gin.Context) (setCredentialReq, error) {
	var req setCredentialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processOlderThanReq binds the workspace path param and parses the older_than cutoff.
func (h *handler) processOlderThanReq(c *gin.Context) (olderThanReq, error) {
	var req olderThanReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, response.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.OlderThan == "" {
		return req, errMissingOlderThan
	}
	cutoff, err := time.Parse(time.RFC3339Nano, req.OlderThan)
	if err != nil {
		return req, errInvalidOlderThan
	}
	req.cutoff = cutoff
	return req, nil
}
