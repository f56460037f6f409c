package handler

import (
	"net/http"
	"strconv"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/repository"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/pagination"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	syncService  service.SyncService
	orderService service.OrderService
	log          *zap.Logger
}

func NewOrderHandler(syncService service.SyncService, orderService service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{syncService: syncService, orderService: orderService, log: log}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	orders.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff))
	{
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.PlaceOrder)
		orders.POST("/:id/cancel", h.CancelOrder)
		orders.PATCH("/:id/status", h.UpdateStatus)
	}
}

// GetOrders lists orders, newest first
// @Summary      Get orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Number of items per page (default 20)"
// @Param        inventory_id  query     int     false  "Filter by item"
// @Param        status        query     string  false  "Filter by confirmation status"
// @Success      200           {object}  response.Response{data=object}
// @Failure      400           {object}  response.Response
// @Router       /api/orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.OrderFilter{Status: c.Query("status")}
	if raw := c.Query("inventory_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "Invalid inventory_id")
			return
		}
		filter.InventoryID = uint(id)
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), p.Page, p.Limit, filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
		"page":   p.Page,
		"limit":  p.Limit,
	}))
}

// GetOrder returns one order
// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response{data=model.Order}
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// PlaceOrder creates a pending order against available stock
// @Summary      Place order
// @Description  Accepted only when available stock (ledger minus pending orders) covers the quantity
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PlaceOrderRequest  true  "Order payload"
// @Success      201      {object}  response.Response{data=service.OrderResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response{data=service.OrderResult}
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req service.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.syncService.PlaceOrder(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if !res.Accepted {
		writeShortfall(c, req.Quantity, res.Shortfall, res)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// CancelOrder cancels an order and returns any stock taken for it
// @Summary      Cancel order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response{data=service.OrderResult}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.syncService.CancelOrder(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order to another confirmation status
// @Summary      Update order status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Order ID"
// @Param        payload  body      updateStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	order, err := h.syncService.UpdateOrderStatus(c.Request.Context(), id, req.Status, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}
