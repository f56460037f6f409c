package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DTOs
type CreateItemRequest struct {
	Name             string          `json:"name" binding:"required"`
	Quantity         int             `json:"quantity" binding:"min=0"`
	ReorderThreshold int             `json:"reorder_threshold" binding:"min=0"`
	UnitType         string          `json:"unit_type"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	SupplierID       *uint           `json:"supplier_id"`
}

type UpdateItemRequest struct {
	Name             string          `json:"name" binding:"required"`
	ReorderThreshold int             `json:"reorder_threshold" binding:"min=0"`
	UnitType         string          `json:"unit_type"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	SupplierID       *uint           `json:"supplier_id"`
}

type CreateVariantRequest struct {
	Variation string           `json:"variation" binding:"required"`
	UnitType  string           `json:"unit_type"`
	Quantity  int              `json:"quantity" binding:"min=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type UpdatePriceRequest struct {
	Variation string          `json:"variation"`
	UnitType  string          `json:"unit_type"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type VariationResponse struct {
	Variation   string           `json:"variation"`
	UnitType    string           `json:"unit_type"`
	Quantity    int              `json:"quantity"`
	Available   int              `json:"available"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	LastUpdated time.Time        `json:"last_updated"`
}

type ItemResponse struct {
	ID               uint                `json:"id"`
	Name             string              `json:"name"`
	Quantity         int                 `json:"quantity"`
	Available        int                 `json:"available"`
	ReorderThreshold int                 `json:"reorder_threshold"`
	UnitType         string              `json:"unit_type"`
	UnitPrice        decimal.Decimal     `json:"unit_price"`
	SupplierID       *uint               `json:"supplier_id"`
	Version          int64               `json:"version"`
	Variations       []VariationResponse `json:"variations,omitempty"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// StockLevel is one pool's ledger quantity next to what is left after pending orders.
type StockLevel struct {
	InventoryID uint   `json:"inventory_id"`
	Variation   string `json:"variation"`
	UnitType    string `json:"unit_type"`
	Quantity    int    `json:"quantity"`
	Available   int    `json:"available"`
}

// ItemService is the catalog side of inventory items. Opening stock goes through
// the ledger like any other movement.
type ItemService interface {
	ListItems(ctx context.Context, page, limit int, search string) ([]ItemResponse, int64, error)
	GetItem(ctx context.Context, id uint) (ItemResponse, error)
	CreateItem(ctx context.Context, req CreateItemRequest, actor model.Actor) (ItemResponse, error)
	UpdateItem(ctx context.Context, id uint, req UpdateItemRequest, actor model.Actor) (ItemResponse, error)
	DeleteItem(ctx context.Context, id uint, actor model.Actor) error
	CreateVariant(ctx context.Context, id uint, req CreateVariantRequest, actor model.Actor) (ItemResponse, error)
	UpdatePrice(ctx context.Context, id uint, req UpdatePriceRequest, actor model.Actor) (ItemResponse, error)
	GetStockLevel(ctx context.Context, key model.StockKey) (StockLevel, error)
}

type itemService struct {
	itemRepo   repository.ItemRepository
	stockRepo  repository.StockRepository
	logRepo    repository.InventoryLogRepository
	txManager  repository.TransactionManager
	changeLog  ChangeLogService
	alerts     AlertService
	calculator StockCalculator
	log        *zap.Logger
}

func NewItemService(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	logRepo repository.InventoryLogRepository,
	txManager repository.TransactionManager,
	changeLog ChangeLogService,
	alerts AlertService,
	calculator StockCalculator,
	log *zap.Logger,
) ItemService {
	return &itemService{
		itemRepo:   itemRepo,
		stockRepo:  stockRepo,
		logRepo:    logRepo,
		txManager:  txManager,
		changeLog:  changeLog,
		alerts:     alerts,
		calculator: calculator,
		log:        log,
	}
}

func (s *itemService) ListItems(ctx context.Context, page, limit int, search string) ([]ItemResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	items, total, err := s.itemRepo.List(ctx, page, limit, search)
	if err != nil {
		return nil, 0, err
	}

	keys := make([]model.StockKey, 0, len(items))
	for _, it := range items {
		keys = append(keys, model.StockKey{InventoryID: it.ID})
	}
	available, err := s.calculator.GetAvailableStockBatch(ctx, keys)
	if err != nil {
		return nil, 0, fmt.Errorf("compute availability: %w", err)
	}
	versions, err := s.changeLog.VersionMap(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load versions: %w", err)
	}

	res := make([]ItemResponse, 0, len(items))
	for i := range items {
		r := toItemResponse(&items[i])
		r.Available = available[model.StockKey{InventoryID: items[i].ID}]
		r.Version = versions[items[i].ID]
		res = append(res, r)
	}
	return res, total, nil
}

func (s *itemService) GetItem(ctx context.Context, id uint) (ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return ItemResponse{}, err
	}
	variations, err := s.stockRepo.ListVariations(ctx, id)
	if err != nil {
		return ItemResponse{}, err
	}

	keys := []model.StockKey{{InventoryID: id}}
	for _, v := range variations {
		keys = append(keys, model.StockKey{InventoryID: id, Variation: v.Variation, UnitType: v.UnitType})
	}
	available, err := s.calculator.GetAvailableStockBatch(ctx, keys)
	if err != nil {
		return ItemResponse{}, fmt.Errorf("compute availability: %w", err)
	}

	res := toItemResponse(item)
	res.Available = available[keys[0]]
	for i, v := range variations {
		vr := VariationResponse{
			Variation:   v.Variation,
			UnitType:    v.UnitType,
			Quantity:    v.Quantity,
			Available:   available[keys[i+1]],
			LastUpdated: v.LastUpdated,
		}
		if v.UnitPrice.Valid {
			price := v.UnitPrice.Decimal
			vr.UnitPrice = &price
		}
		res.Variations = append(res.Variations, vr)
	}

	if rec, err := s.changeLog.Get(ctx, id); err == nil {
		res.Version = rec.Version
	} else if !errors.Is(err, repository.ErrItemNotFound) {
		return ItemResponse{}, err
	}
	return res, nil
}

func (s *itemService) CreateItem(ctx context.Context, req CreateItemRequest, actor model.Actor) (ItemResponse, error) {
	unitType := model.NormalizeUnitType(req.UnitType)
	if !model.IsValidUnitType(unitType) {
		return ItemResponse{}, repository.ErrInvalidUnitType
	}
	if req.UnitPrice.IsNegative() {
		return ItemResponse{}, ErrInvalidPrice
	}

	item := model.InventoryItem{
		Name:             req.Name,
		ReorderThreshold: req.ReorderThreshold,
		UnitType:         unitType,
		UnitPrice:        req.UnitPrice,
		SupplierID:       req.SupplierID,
	}
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.itemRepo.Create(txCtx, &item); err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		if req.Quantity == 0 {
			return nil
		}

		key := model.StockKey{InventoryID: item.ID, UnitType: unitType}
		if _, err := s.stockRepo.IncrementStock(txCtx, key, req.Quantity); err != nil {
			return fmt.Errorf("failed to record opening stock: %w", err)
		}
		item.Quantity = req.Quantity
		entry := newLogEntry(key, model.ActionStockIn, 0, req.Quantity, StockRequest{Note: "opening stock"}, actor)
		if err := s.logRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("failed to write inventory log: %w", err)
		}
		return nil
	})
	if err != nil {
		return ItemResponse{}, err
	}

	s.bump(ctx, &item, actor)
	return s.GetItem(ctx, item.ID)
}

func (s *itemService) UpdateItem(ctx context.Context, id uint, req UpdateItemRequest, actor model.Actor) (ItemResponse, error) {
	unitType := model.NormalizeUnitType(req.UnitType)
	if !model.IsValidUnitType(unitType) {
		return ItemResponse{}, repository.ErrInvalidUnitType
	}
	if req.UnitPrice.IsNegative() {
		return ItemResponse{}, ErrInvalidPrice
	}

	var item *model.InventoryItem
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		item, err = s.itemRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		item.Name = req.Name
		item.ReorderThreshold = req.ReorderThreshold
		item.UnitType = unitType
		item.UnitPrice = req.UnitPrice
		item.SupplierID = req.SupplierID
		return s.itemRepo.Update(txCtx, item)
	})
	if err != nil {
		return ItemResponse{}, err
	}

	s.bump(ctx, item, actor)
	return s.GetItem(ctx, id)
}

// DeleteItem soft-deletes the item and flags its change record. The version is
// left as is so clients holding it see the deletion through the flag.
func (s *itemService) DeleteItem(ctx context.Context, id uint, actor model.Actor) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.changeLog.MarkDeleted(context.WithoutCancel(ctx), id); err != nil {
		s.log.Warn("Failed to mark change record deleted", zap.Uint("inventory_id", id), zap.Error(err))
	}
	s.log.Info("Inventory item deleted", zap.Uint("inventory_id", id), zap.Stringer("actor", actor))
	return nil
}

func (s *itemService) CreateVariant(ctx context.Context, id uint, req CreateVariantRequest, actor model.Actor) (ItemResponse, error) {
	var price decimal.NullDecimal
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return ItemResponse{}, ErrInvalidPrice
		}
		price = decimal.NewNullDecimal(*req.UnitPrice)
	}
	key, err := repository.NormalizeKey(model.StockKey{InventoryID: id, Variation: req.Variation, UnitType: req.UnitType})
	if err != nil {
		return ItemResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		if err := s.stockRepo.CreateVariant(txCtx, key, req.Quantity, price); err != nil {
			return err
		}
		if req.Quantity == before {
			return nil
		}
		entry := newLogEntry(key, model.ActionAdjustment, before, req.Quantity-before, StockRequest{Note: "variation created"}, actor)
		return s.logRepo.Create(txCtx, entry)
	})
	if err != nil {
		return ItemResponse{}, err
	}

	if _, err := s.changeLog.BumpVersion(context.WithoutCancel(ctx), id, actor, key.UnitType, price); err != nil {
		s.log.Warn("Change log bump failed", zap.Uint("inventory_id", id), zap.Error(err))
	}
	if _, err := s.alerts.Evaluate(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn("Low stock evaluation failed", zap.Uint("inventory_id", id), zap.String("variation", key.Variation), zap.Error(err))
	}
	return s.GetItem(ctx, id)
}

func (s *itemService) UpdatePrice(ctx context.Context, id uint, req UpdatePriceRequest, actor model.Actor) (ItemResponse, error) {
	if req.UnitPrice.IsNegative() {
		return ItemResponse{}, ErrInvalidPrice
	}
	key := model.StockKey{InventoryID: id, Variation: req.Variation, UnitType: req.UnitType}
	if err := s.stockRepo.UpdatePrice(ctx, key, req.UnitPrice); err != nil {
		return ItemResponse{}, err
	}
	if _, err := s.changeLog.BumpVersion(context.WithoutCancel(ctx), id, actor, model.NormalizeUnitType(req.UnitType), decimal.NewNullDecimal(req.UnitPrice)); err != nil {
		s.log.Warn("Change log bump failed", zap.Uint("inventory_id", id), zap.Error(err))
	}
	return s.GetItem(ctx, id)
}

func (s *itemService) GetStockLevel(ctx context.Context, key model.StockKey) (StockLevel, error) {
	key, err := repository.NormalizeKey(key)
	if err != nil {
		return StockLevel{}, err
	}
	if _, err := s.itemRepo.FindByID(ctx, key.InventoryID); err != nil {
		return StockLevel{}, err
	}
	qty, err := s.stockRepo.GetStock(ctx, key)
	if err != nil {
		return StockLevel{}, err
	}
	available, err := s.calculator.GetAvailableStock(ctx, key)
	if err != nil {
		return StockLevel{}, fmt.Errorf("compute availability: %w", err)
	}
	return StockLevel{
		InventoryID: key.InventoryID,
		Variation:   key.Variation,
		UnitType:    key.UnitType,
		Quantity:    qty,
		Available:   available,
	}, nil
}

func (s *itemService) bump(ctx context.Context, item *model.InventoryItem, actor model.Actor) {
	if _, err := s.changeLog.BumpVersion(context.WithoutCancel(ctx), item.ID, actor, item.UnitType, decimal.NewNullDecimal(item.UnitPrice)); err != nil {
		s.log.Warn("Change log bump failed", zap.Uint("inventory_id", item.ID), zap.Error(err))
	}
}

func toItemResponse(item *model.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Quantity:         item.Quantity,
		ReorderThreshold: item.ReorderThreshold,
		UnitType:         item.UnitType,
		UnitPrice:        item.UnitPrice,
		SupplierID:       item.SupplierID,
		UpdatedAt:        item.UpdatedAt,
	}
}
