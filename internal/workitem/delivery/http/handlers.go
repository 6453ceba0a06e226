package http

import (
	"github.com/gin-gonic/gin"

	"task-digest/pkg/response"
)

// SetCredential godoc
// @Summary     Set the work-item access token
// @Description Installs a new client handle and drops the in-process caches.
// @Tags        WorkItem
// @Accept      json
// @Produce     json
// @Param       body body setCredentialReq true "Access token"
// @Success     200 {object} credentialResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/credentials/workitem [PUT]
func (h *handler) SetCredential(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetCredentialReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.SetCredential(ctx, req.Token); err != nil {
		h.l.Errorf(ctx, "uc.SetCredential: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, credentialResp{Configured: true})
}

// ClearCredential godoc
// @Summary     Clear the work-item access token
// @Tags        WorkItem
// @Produce     json
// @Success     200 {object} credentialResp
// @Router      /api/v1/credentials/workitem [DELETE]
func (h *handler) ClearCredential(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearCredential(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearCredential: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, credentialResp{Configured: false})
}

// ListWorkspaces godoc
// @Summary     List workspaces
// @Tags        WorkItem
// @Produce     json
// @Success     200 {object} workspacesResp
// @Failure     412 {object} response.Resp "Credential not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/workspaces [GET]
func (h *handler) ListWorkspaces(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := h.uc.ListWorkspaces(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWorkspaces: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, workspacesResp{Workspaces: ws})
}

// ListProjects godoc
// @Summary     List projects of a workspace
// @Tags        WorkItem
// @Produce     json
// @Param       id path string true "Workspace ID"
// @Success     200 {object} projectsResp
// @Failure     412 {object} response.Resp "Credential not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/workspaces/{id}/projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.ListProjects(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, projectsResp{Projects: projects})
}

// CurrentUser godoc
// @Summary     Current user
// @Tags        WorkItem
// @Produce     json
// @Success     200 {object} userResp
// @Failure     412 {object} response.Resp "Credential not set"
// @Router      /api/v1/me [GET]
func (h *handler) CurrentUser(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.CurrentUser(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CurrentUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, userResp{User: u})
}

// FindItemsOlderThan godoc
// @Summary     Items created before a cutoff
// @Description Deduplicated items of every project in the workspace, served from cache when fresh.
// @Tags        WorkItem
// @Produce     json
// @Param       id         path  string true "Workspace ID"
// @Param       older_than query string true "Cutoff instant (RFC3339)"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "Credential not set"
// @Failure     502 {object} response.Resp "Remote failure"
// @Router      /api/v1/workspaces/{id}/items [GET]
func (h *handler) FindItemsOlderThan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOlderThanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.FindItemsOlderThan(ctx, req.WorkspaceID, req.cutoff)
	if err != nil {
		h.l.Errorf(ctx, "uc.FindItemsOlderThan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemsResp(items, req.cutoff))
}

// CachedItemsOlderThan godoc
// @Summary     Persisted items created before a cutoff
// @Description Reads the persistent cache only; never calls the remote system.
// @Tags        WorkItem
// @Produce     json
// @Param       id         path  string true "Workspace ID"
// @Param       older_than query string true "Cutoff instant (RFC3339)"
// @Success     200 {object} cachedItemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/workspaces/{id}/items/cached [GET]
func (h *handler) CachedItemsOlderThan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOlderThanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, hit := h.uc.CachedItemsOlderThan(ctx, req.WorkspaceID, req.cutoff)
	response.OK(c, cachedItemsResp{itemsResp: newItemsResp(items, req.cutoff), Hit: hit})
}

// ClearCache godoc
// @Summary     Clear cached listings
// @Description Removes persisted listings (current and legacy keys) and the in-process caches.
// @Tags        WorkItem
// @Produce     json
// @Success     200 {object} clearCacheResp
// @Router      /api/v1/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, clearCacheResp{Removed: h.uc.ClearPersistentCache(ctx)})
}
