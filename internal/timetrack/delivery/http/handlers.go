package http

import (
	"github.com/gin-gonic/gin"

	"task-digest/pkg/response"
)

// SetAPIKey godoc
// @Summary     Set the time-tracking API key
// @Description An empty key unconfigures the time-tracking integration.
// @Tags        TimeTrack
// @Accept      json
// @Produce     json
// @Param       body body setAPIKeyReq true "API key"
// @Success     200 {object} apiKeyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/credentials/timetrack [PUT]
func (h *handler) SetAPIKey(c *gin.Context) {
	ctx := c.Request.Context()

	var req setAPIKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.SetAPIKey(ctx, req.APIKey); err != nil {
		h.l.Errorf(ctx, "uc.SetAPIKey: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, apiKeyResp{Configured: req.APIKey != ""})
}

// ListEntries godoc
// @Summary     List time entries
// @Tags        TimeTrack
// @Produce     json
// @Param       from query string false "First day (YYYY-MM-DD)"
// @Param       to   query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} entriesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "API key not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/time/entries [GET]
func (h *handler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()

	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	entries, err := h.uc.ListTimeEntries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTimeEntries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, entriesResp{Entries: entries, Count: len(entries)})
}

// Summary godoc
// @Summary     Tracked seconds per task
// @Description Entries whose task cannot be recovered are left out.
// @Tags        TimeTrack
// @Produce     json
// @Param       from query string false "First day (YYYY-MM-DD)"
// @Param       to   query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "API key not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/time/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	entries, err := h.uc.ListTimeEntries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTimeEntries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(h.uc.SummarizeByTask(entries)))
}
