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

type ItemHandler struct {
	itemService service.ItemService
	log         *zap.Logger
}

func NewItemHandler(itemService service.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, log: log}
}

func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	read := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff, middleware.RoleSupplier)
	write := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff)

	items := router.Group("/api/items")
	{
		items.GET("", read, h.GetItems)
		items.GET("/:id", read, h.GetItem)
		items.POST("", write, h.CreateItem)
		items.PUT("/:id", write, h.UpdateItem)
		items.DELETE("/:id", middleware.RequireRole(middleware.RoleAdmin), h.DeleteItem)
		items.POST("/:id/variants", write, h.CreateVariant)
		items.PUT("/:id/price", write, h.UpdatePrice)
	}
}

// GetItems handles retrieving paginated inventory items
// @Summary      Get items
// @Description  Retrieves a paginated list of items with ledger stock, available stock and version
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Param        search  query     string  false  "Search by item name"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	p := pagination.Parse(c)

	items, total, err := h.itemService.ListItems(c.Request.Context(), p.Page, p.Limit, c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	}))
}

// GetItem returns one item with its variations
// @Summary      Get item
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Response{data=service.ItemResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// CreateItem creates a new inventory item
// @Summary      Create item
// @Description  Opening quantity is recorded as a stock_in movement
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateItemRequest  true  "Create Item Payload"
// @Success      201      {object}  response.Response{data=service.ItemResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateItem updates an item's catalog fields; quantity is not touched
// @Summary      Update item
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Item ID"
// @Param        payload  body      service.UpdateItemRequest  true  "Update Item Payload"
// @Success      200      {object}  response.Response{data=service.ItemResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem soft deletes an item
// @Summary      Delete item
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.itemService.DeleteItem(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"deleted": id}))
}

// CreateVariant adds or resets a variation of an item
// @Summary      Create variation
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Item ID"
// @Param        payload  body      service.CreateVariantRequest  true  "Variation payload"
// @Success      201      {object}  response.Response{data=service.ItemResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/items/{id}/variants [post]
func (h *ItemHandler) CreateVariant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.itemService.CreateVariant(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdatePrice sets the unit price of the item or one of its variations
// @Summary      Update price
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Item ID"
// @Param        payload  body      service.UpdatePriceRequest  true  "Price payload"
// @Success      200      {object}  response.Response{data=service.ItemResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/items/{id}/price [put]
func (h *ItemHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.itemService.UpdatePrice(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}
