package handler

import (
	"net/http"
	"strconv"
	"time"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChangeFeedHandler struct {
	changeLog service.ChangeLogService
	log       *zap.Logger
}

func NewChangeFeedHandler(changeLog service.ChangeLogService, log *zap.Logger) *ChangeFeedHandler {
	return &ChangeFeedHandler{changeLog: changeLog, log: log}
}

func (h *ChangeFeedHandler) RegisterRoutes(router *gin.RouterGroup) {
	changes := router.Group("/api/changes")
	changes.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff, middleware.RoleSupplier))
	{
		changes.GET("/poll", h.Poll)
		changes.GET("/versions", h.GetVersions)
		changes.GET("/variations", h.GetVariationUpdates)
		changes.GET("/:id", h.GetChange)
	}
}

// Poll tells a client whether its cached inventory view is stale
// @Summary      Poll for changes
// @Description  Compares the client's last seen version and mtime with the store
// @Tags         changes
// @Security     BearerAuth
// @Produce      json
// @Param        item_id       query     int  false  "Restrict to one item"
// @Param        last_version  query     int  false  "Last version seen by the client"
// @Param        last_mtime    query     int  false  "Last modification time seen (unix seconds)"
// @Success      200           {object}  response.Response{data=service.PollResponse}
// @Failure      400           {object}  response.Response
// @Router       /api/changes/poll [get]
func (h *ChangeFeedHandler) Poll(c *gin.Context) {
	var req service.PollRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid query: "+err.Error())
		return
	}
	res, err := h.changeLog.Poll(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// GetVersions returns the inventory_id to latest version map
// @Summary      Version map
// @Tags         changes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]int}
// @Router       /api/changes/versions [get]
func (h *ChangeFeedHandler) GetVersions(c *gin.Context) {
	versions, err := h.changeLog.VersionMap(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, versions))
}

// GetVariationUpdates lists variation snapshots changed after since
// @Summary      Variation updates
// @Tags         changes
// @Security     BearerAuth
// @Produce      json
// @Param        since  query     string  false  "RFC3339 timestamp or unix seconds; empty returns everything"
// @Success      200    {object}  response.Response{data=[]service.VariationUpdate}
// @Failure      400    {object}  response.Response
// @Router       /api/changes/variations [get]
func (h *ChangeFeedHandler) GetVariationUpdates(c *gin.Context) {
	since, err := parseSince(c.Query("since"))
	if err != nil {
		badRequest(c, "Invalid since: "+err.Error())
		return
	}
	updates, err := h.changeLog.VariationUpdatesSince(c.Request.Context(), since)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, updates))
}

// GetChange returns the change record of one item
// @Summary      Item change record
// @Tags         changes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Response{data=model.ChangeLogRecord}
// @Failure      404  {object}  response.Response
// @Router       /api/changes/{id} [get]
func (h *ChangeFeedHandler) GetChange(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rec, err := h.changeLog.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

func parseSince(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, raw)
}
