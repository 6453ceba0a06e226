package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-digest/pkg/response"
)

// Critical godoc
// @Summary     Stale and over-budget items
// @Description Open items older than six months, plus items older than one month with more than an hour tracked.
// @Tags        Digest
// @Produce     json
// @Param       assignee query string false "ALL, UNASSIGNED or a user id"
// @Success     200 {object} criticalResp
// @Failure     412 {object} response.Resp "Credential not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/digest/critical [GET]
func (h *handler) Critical(c *gin.Context) {
	ctx := c.Request.Context()

	var req criticalReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	out, err := h.uc.Critical(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Critical: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCriticalResp(out))
}

// WaitingFor godoc
// @Summary     Items blocked on someone else
// @Tags        Digest
// @Produce     json
// @Success     200 {object} waitingResp
// @Failure     412 {object} response.Resp "Credential not set"
// @Router      /api/v1/digest/waiting [GET]
func (h *handler) WaitingFor(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.WaitingFor(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.WaitingFor: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, waitingResp{Tasks: nonNil(out.Tasks), FromCache: out.FromCache})
}

// Focused godoc
// @Summary     Own items of one focus tab, grouped by project
// @Tags        Digest
// @Produce     json
// @Param       tab query string false "Tab id; defaults to the first tab"
// @Success     200 {object} focusedResp
// @Failure     404 {object} response.Resp "Unknown tab"
// @Router      /api/v1/digest/focused [GET]
func (h *handler) Focused(c *gin.Context) {
	ctx := c.Request.Context()

	var req focusedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	out, err := h.uc.Focused(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Focused: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, focusedResp{
		Tab:           out.TabID,
		Groups:        nonNil(out.Groups),
		FromCache:     out.FromCache,
		TimeAvailable: out.TimeAvailable,
	})
}

// Tabs godoc
// @Summary     Configured focus tabs
// @Tags        Digest
// @Produce     json
// @Success     200 {object} tabsResp
// @Router      /api/v1/digest/tabs [GET]
func (h *handler) Tabs(c *gin.Context) {
	response.OK(c, tabsResp{Tabs: h.uc.Tabs()})
}
