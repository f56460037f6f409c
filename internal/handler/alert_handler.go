package handler

import (
	"net/http"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/pagination"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AlertHandler struct {
	alerts service.AlertService
	log    *zap.Logger
}

func NewAlertHandler(alerts service.AlertService, log *zap.Logger) *AlertHandler {
	return &AlertHandler{alerts: alerts, log: log}
}

func (h *AlertHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/alerts")
	group.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff))
	{
		group.GET("", h.GetAlerts)
		group.POST("/:id/resolve", h.ResolveAlert)
	}
}

// GetAlerts lists unresolved stock alerts
// @Summary      Get alerts
// @Tags         alerts
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/alerts [get]
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	p := pagination.Parse(c)

	alerts, total, err := h.alerts.ListUnresolved(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"total":  total,
		"page":   p.Page,
		"limit":  p.Limit,
	}))
}

// ResolveAlert marks one alert resolved
// @Summary      Resolve alert
// @Tags         alerts
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Alert ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.alerts.ResolveByID(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"resolved": id}))
}
