package handler

import (
	"net/http"
	"strconv"
	"time"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/repository"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/pagination"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryLogHandler struct {
	logService service.InventoryLogService
	log        *zap.Logger
}

func NewInventoryLogHandler(logService service.InventoryLogService, log *zap.Logger) *InventoryLogHandler {
	return &InventoryLogHandler{logService: logService, log: log}
}

func (h *InventoryLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/inventory-logs")
	group.Use(middleware.RequireRole(middleware.RoleAdmin)) // movement history is admin only
	{
		group.GET("", h.GetInventoryLogs)
	}
}

// GetInventoryLogs retrieves the stock movement history
// @Summary      Get inventory logs
// @Description  Paginated audit trail of every ledger mutation, newest first
// @Tags         inventory-logs
// @Security     BearerAuth
// @Produce      json
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Number of items per page (default 20)"
// @Param        inventory_id  query     int     false  "Filter by item"
// @Param        action        query     string  false  "Filter by action"
// @Param        from          query     string  false  "RFC3339 lower bound"
// @Param        to            query     string  false  "RFC3339 upper bound"
// @Success      200           {object}  response.Response{data=object}
// @Failure      400           {object}  response.Response
// @Router       /api/inventory-logs [get]
func (h *InventoryLogHandler) GetInventoryLogs(c *gin.Context) {
	p := pagination.Parse(c)

	filter := repository.InventoryLogFilter{Action: c.Query("action")}
	if raw := c.Query("inventory_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "Invalid inventory_id")
			return
		}
		filter.InventoryID = uint(id)
	}
	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "Invalid "+name+": expected RFC3339")
			return
		}
		t = t.UTC()
		*dst = &t
	}

	logs, total, err := h.logService.GetLogs(c.Request.Context(), p.Page, p.Limit, filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	}))
}
