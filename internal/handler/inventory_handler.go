package handler

import (
	"net/http"
	"strconv"
	"strings"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/model"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	syncService service.SyncService
	itemService service.ItemService
	calculator  service.StockCalculator
	alerts      service.AlertService
	log         *zap.Logger
}

func NewInventoryHandler(
	syncService service.SyncService,
	itemService service.ItemService,
	calculator service.StockCalculator,
	alerts service.AlertService,
	log *zap.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		syncService: syncService,
		itemService: itemService,
		calculator:  calculator,
		alerts:      alerts,
		log:         log,
	}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff)
	anyone := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff, middleware.RoleSupplier)

	inventory := router.Group("/api/inventory")
	{
		inventory.GET("/available", anyone, h.GetAvailable)
		inventory.GET("/:id/stock", anyone, h.GetStock)
		inventory.POST("/:id/reservations", staff, h.ReserveStock)
		inventory.POST("/:id/deliveries", anyone, h.ReceiveDelivery)
		inventory.POST("/:id/sales", staff, h.RecordSale)
		inventory.POST("/:id/stock-in", staff, h.StockIn)
		inventory.POST("/:id/stock-out", staff, h.StockOut)
		inventory.POST("/:id/adjustments", middleware.RequireRole(middleware.RoleAdmin), h.AdjustStock)
		inventory.POST("/:id/reorder", staff, h.RaiseReorder)
	}
}

type mutationFunc func(c *gin.Context, req service.StockRequest) (service.MutationResult, error)

// mutate binds a StockRequest for the item in the path and runs fn. A shortfall
// is answered with 409 and the result so the client can show what is left.
func (h *InventoryHandler) mutate(c *gin.Context, fn mutationFunc) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	req.ItemID = id

	res, err := fn(c, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if !res.Applied {
		writeShortfall(c, res.Requested, res.Shortfall, res)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ReserveStock takes stock out of the ledger for an order
// @Summary      Reserve stock for order
// @Description  Decrements the pool for an order. Returns 409 when stock is insufficient.
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Inventory item ID"
// @Param        payload  body      service.StockRequest  true  "Reservation payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response{data=service.MutationResult}
// @Router       /api/inventory/{id}/reservations [post]
func (h *InventoryHandler) ReserveStock(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, req service.StockRequest) (service.MutationResult, error) {
		return h.syncService.ReserveStockForOrder(c.Request.Context(), req, middleware.Actor(c))
	})
}

// ReceiveDelivery adds delivered stock, creating the variation on first delivery
// @Summary      Receive delivery
// @Description  Increments the pool. A unit price is stored on first delivery or when positive.
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Inventory item ID"
// @Param        payload  body      service.StockRequest  true  "Delivery payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id}/deliveries [post]
func (h *InventoryHandler) ReceiveDelivery(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, req service.StockRequest) (service.MutationResult, error) {
		return h.syncService.ReceiveDelivery(c.Request.Context(), req, middleware.Actor(c))
	})
}

// RecordSale takes sold stock out of the ledger
// @Summary      Record sale
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Inventory item ID"
// @Param        payload  body      service.StockRequest  true  "Sale payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Failure      409      {object}  response.Response{data=service.MutationResult}
// @Router       /api/inventory/{id}/sales [post]
func (h *InventoryHandler) RecordSale(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, req service.StockRequest) (service.MutationResult, error) {
		return h.syncService.RecordSale(c.Request.Context(), req, middleware.Actor(c))
	})
}

// StockIn records a manual stock receipt
// @Summary      Manual stock in
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Inventory item ID"
// @Param        payload  body      service.StockRequest  true  "Stock payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Router       /api/inventory/{id}/stock-in [post]
func (h *InventoryHandler) StockIn(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, req service.StockRequest) (service.MutationResult, error) {
		return h.syncService.StockIn(c.Request.Context(), req, middleware.Actor(c))
	})
}

// StockOut records a manual stock removal
// @Summary      Manual stock out
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Inventory item ID"
// @Param        payload  body      service.StockRequest  true  "Stock payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Failure      409      {object}  response.Response{data=service.MutationResult}
// @Router       /api/inventory/{id}/stock-out [post]
func (h *InventoryHandler) StockOut(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, req service.StockRequest) (service.MutationResult, error) {
		return h.syncService.StockOut(c.Request.Context(), req, middleware.Actor(c))
	})
}

// AdjustStock sets an absolute quantity after a stock count
// @Summary      Adjust stock
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Inventory item ID"
// @Param        payload  body      service.AdjustRequest  true  "Adjustment payload"
// @Success      200      {object}  response.Response{data=service.MutationResult}
// @Failure      400      {object}  response.Response
// @Router       /api/inventory/{id}/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	req.ItemID = id

	res, err := h.syncService.AdjustStock(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// GetStock returns the ledger and available quantity of one pool
// @Summary      Get stock level
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id         path      int     true   "Inventory item ID"
// @Param        variation  query     string  false  "Variation name, empty for base stock"
// @Param        unit_type  query     string  false  "Unit type (default per piece)"
// @Success      200        {object}  response.Response{data=service.StockLevel}
// @Failure      404        {object}  response.Response
// @Router       /api/inventory/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	level, err := h.itemService.GetStockLevel(c.Request.Context(), model.StockKey{
		InventoryID: id,
		Variation:   c.Query("variation"),
		UnitType:    c.Query("unit_type"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, level))
}

type availableEntry struct {
	InventoryID uint `json:"inventory_id"`
	Available   int  `json:"available"`
}

// GetAvailable returns available base stock for several items at once
// @Summary      Batch available stock
// @Description  Unknown or deleted items report 0.
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        ids  query     string  true  "Comma separated item IDs"
// @Success      200  {object}  response.Response{data=[]availableEntry}
// @Failure      400  {object}  response.Response
// @Router       /api/inventory/available [get]
func (h *InventoryHandler) GetAvailable(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		badRequest(c, "ids is required")
		return
	}
	var keys []model.StockKey
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			badRequest(c, "Invalid item id: "+part)
			return
		}
		keys = append(keys, model.StockKey{InventoryID: uint(id)})
	}

	available, err := h.calculator.GetAvailableStockBatch(c.Request.Context(), keys)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	out := make([]availableEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, availableEntry{InventoryID: k.InventoryID, Available: available[k]})
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, out))
}

type reorderRequest struct {
	Variation string `json:"variation"`
}

// RaiseReorder opens a reorder alert for a pool
// @Summary      Raise reorder alert
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int             true   "Inventory item ID"
// @Param        payload  body      reorderRequest  false  "Variation, empty for base stock"
// @Success      201      {object}  response.Response{data=model.AlertRecord}
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id}/reorder [post]
func (h *InventoryHandler) RaiseReorder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request payload: "+err.Error())
			return
		}
	}

	alert, err := h.alerts.RaiseReorder(c.Request.Context(), id, req.Variation, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, alert))
}
