package service

import (
	"context"
	"errors"
	"fmt"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DTOs
type StockRequest struct {
	ItemID     uint             `json:"-"`
	Variation  string           `json:"variation"`
	UnitType   string           `json:"unit_type"`
	Quantity   int              `json:"quantity" binding:"required,gt=0"`
	OrderID    uint             `json:"order_id"`
	DeliveryID uint             `json:"delivery_id"`
	SaleID     uint             `json:"sale_id"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Note       string           `json:"note"`
}

func (r StockRequest) key() model.StockKey {
	return model.StockKey{InventoryID: r.ItemID, Variation: r.Variation, UnitType: r.UnitType}
}

type AdjustRequest struct {
	ItemID    uint   `json:"-"`
	Variation string `json:"variation"`
	UnitType  string `json:"unit_type"`
	Quantity  int    `json:"quantity" binding:"min=0"`
	Note      string `json:"note"`
}

type PlaceOrderRequest struct {
	ItemID    uint   `json:"inventory_id" binding:"required"`
	Variation string `json:"variation"`
	UnitType  string `json:"unit_type"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Note      string `json:"note"`
}

// MutationResult describes one ledger mutation. Insufficient stock is reported
// with Applied=false and a positive Shortfall, never as an error.
type MutationResult struct {
	Applied        bool `json:"applied"`
	Replayed       bool `json:"replayed,omitempty"`
	QuantityBefore int  `json:"quantity_before"`
	QuantityAfter  int  `json:"quantity_after"`
	Requested      int  `json:"requested"`
	Shortfall      int  `json:"shortfall,omitempty"`
}

// OrderResult reports an order operation. Available is the pool's available
// stock after the call; Reversal is set when cancelling returned ledger stock.
type OrderResult struct {
	Order     *model.Order    `json:"order"`
	Accepted  bool            `json:"accepted"`
	Available int             `json:"available"`
	Shortfall int             `json:"shortfall,omitempty"`
	Reversal  *MutationResult `json:"reversal,omitempty"`
}

// SyncService is the only entry point for business events that change stock.
// Each call runs in one transaction that covers the ledger write and its audit
// entry; the change log bump and alert evaluation follow the commit and never
// fail the call.
type SyncService interface {
	ReserveStockForOrder(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error)
	ReceiveDelivery(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error)
	RecordSale(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error)
	StockIn(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error)
	StockOut(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error)
	AdjustStock(ctx context.Context, req AdjustRequest, actor model.Actor) (MutationResult, error)
	PlaceOrder(ctx context.Context, req PlaceOrderRequest, actor model.Actor) (OrderResult, error)
	CancelOrder(ctx context.Context, orderID uint, actor model.Actor) (OrderResult, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string, actor model.Actor) (*model.Order, error)
	CheckLowStockAlerts(ctx context.Context, key model.StockKey) error
}

type SyncOptions struct {
	// DedupeCorrelationIDs makes a replayed (action, correlation id) return the
	// recorded outcome instead of mutating again.
	DedupeCorrelationIDs bool
}

type syncService struct {
	itemRepo  repository.ItemRepository
	stockRepo repository.StockRepository
	orderRepo repository.OrderRepository
	logRepo   repository.InventoryLogRepository
	txManager repository.TransactionManager
	changeLog ChangeLogService
	alerts    AlertService
	opts      SyncOptions
	log       *zap.Logger
	audit     *zap.Logger
}

func NewSyncService(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	orderRepo repository.OrderRepository,
	logRepo repository.InventoryLogRepository,
	txManager repository.TransactionManager,
	changeLog ChangeLogService,
	alerts AlertService,
	opts SyncOptions,
	log *zap.Logger,
	audit *zap.Logger,
) SyncService {
	if audit == nil {
		audit = zap.NewNop()
	}
	return &syncService{
		itemRepo:  itemRepo,
		stockRepo: stockRepo,
		orderRepo: orderRepo,
		logRepo:   logRepo,
		txManager: txManager,
		changeLog: changeLog,
		alerts:    alerts,
		opts:      opts,
		log:       log,
		audit:     audit,
	}
}

func (s *syncService) ReserveStockForOrder(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error) {
	return s.decrement(ctx, model.ActionOrderPlaced, req, actor)
}

func (s *syncService) RecordSale(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error) {
	return s.decrement(ctx, model.ActionSaleCompleted, req, actor)
}

func (s *syncService) StockOut(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error) {
	return s.decrement(ctx, model.ActionStockOut, req, actor)
}

func (s *syncService) ReceiveDelivery(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error) {
	return s.increment(ctx, model.ActionDeliveryReceived, req, actor)
}

func (s *syncService) StockIn(ctx context.Context, req StockRequest, actor model.Actor) (MutationResult, error) {
	return s.increment(ctx, model.ActionStockIn, req, actor)
}

func (s *syncService) CheckLowStockAlerts(ctx context.Context, key model.StockKey) error {
	_, err := s.alerts.Evaluate(ctx, key)
	return err
}

func validatedKey(req StockRequest) (model.StockKey, error) {
	if req.Quantity <= 0 {
		return model.StockKey{}, repository.ErrInvalidQuantity
	}
	if req.UnitPrice != nil && req.UnitPrice.IsNegative() {
		return model.StockKey{}, ErrInvalidPrice
	}
	return repository.NormalizeKey(req.key())
}

func (s *syncService) decrement(ctx context.Context, action string, req StockRequest, actor model.Actor) (MutationResult, error) {
	key, err := validatedKey(req)
	if err != nil {
		return MutationResult{}, err
	}

	var (
		res   MutationResult
		entry *model.InventoryLogEntry
	)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, entry, err = s.applyDecrement(txCtx, action, key, req, actor)
		return err
	})
	if errors.Is(err, repository.ErrDuplicateCorrelation) {
		return s.replayAfterConflict(ctx, action, req)
	}
	if err != nil {
		return MutationResult{}, fmt.Errorf("%s: %w", action, err)
	}
	if entry != nil {
		s.afterCommit(ctx, key, actor, entry, decimal.NullDecimal{})
	}
	return res, nil
}

// applyDecrement must run inside a transaction. It locks the pool to read the
// pre-decrement quantity, then relies on the conditional UPDATE as the final
// guard. A nil entry with a nil error means nothing was written.
func (s *syncService) applyDecrement(txCtx context.Context, action string, key model.StockKey, req StockRequest, actor model.Actor) (MutationResult, *model.InventoryLogEntry, error) {
	res := MutationResult{Requested: req.Quantity}

	prev, err := s.replayed(txCtx, action, key, req)
	if err != nil {
		return res, nil, err
	}
	if prev != nil {
		return replayResult(prev, req.Quantity), nil, nil
	}

	if _, err := s.itemRepo.FindByID(txCtx, key.InventoryID); err != nil {
		return res, nil, err
	}
	before, err := s.stockRepo.LockStock(txCtx, key)
	if err != nil {
		return res, nil, err
	}
	res.QuantityBefore, res.QuantityAfter = before, before
	if before < req.Quantity {
		res.Shortfall = req.Quantity - before
		return res, nil, nil
	}

	ok, err := s.stockRepo.DecrementStock(txCtx, key, req.Quantity)
	if err != nil {
		return res, nil, err
	}
	if !ok {
		current, err := s.stockRepo.GetStock(txCtx, key)
		if err != nil {
			return res, nil, err
		}
		res.QuantityAfter = current
		res.Shortfall = max(req.Quantity-current, 1)
		return res, nil, nil
	}

	res.Applied = true
	res.QuantityAfter = before - req.Quantity
	entry := newLogEntry(key, action, before, -req.Quantity, req, actor)
	s.stampCorrelation(entry, req)
	if err := s.logRepo.Create(txCtx, entry); err != nil {
		return res, nil, fmt.Errorf("write inventory log: %w", err)
	}
	return res, entry, nil
}

func (s *syncService) increment(ctx context.Context, action string, req StockRequest, actor model.Actor) (MutationResult, error) {
	key, err := validatedKey(req)
	if err != nil {
		return MutationResult{}, err
	}

	res := MutationResult{Requested: req.Quantity}
	var (
		entry     *model.InventoryLogEntry
		threshold int
	)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		prev, err := s.replayed(txCtx, action, key, req)
		if err != nil {
			return err
		}
		if prev != nil {
			res = replayResult(prev, req.Quantity)
			return nil
		}

		item, err := s.itemRepo.FindByID(txCtx, key.InventoryID)
		if err != nil {
			return err
		}
		threshold = item.ReorderThreshold

		created := false
		if !key.IsBase() {
			_, err := s.stockRepo.GetVariation(txCtx, key)
			switch {
			case errors.Is(err, repository.ErrVariationNotFound):
				created = true
			case err != nil:
				return err
			}
		}

		if _, err := s.stockRepo.IncrementStock(txCtx, key, req.Quantity); err != nil {
			return err
		}
		// The increment holds the row lock now, so this read is exact.
		after, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		res.Applied = true
		res.QuantityBefore = after - req.Quantity
		res.QuantityAfter = after

		if req.UnitPrice != nil && (created || req.UnitPrice.IsPositive()) {
			if err := s.stockRepo.UpdatePrice(txCtx, key, *req.UnitPrice); err != nil {
				return fmt.Errorf("apply unit price: %w", err)
			}
		}

		entry = newLogEntry(key, action, res.QuantityBefore, req.Quantity, req, actor)
		s.stampCorrelation(entry, req)
		if err := s.logRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("write inventory log: %w", err)
		}
		return nil
	})
	if errors.Is(err, repository.ErrDuplicateCorrelation) {
		return s.replayAfterConflict(ctx, action, req)
	}
	if err != nil {
		return MutationResult{}, fmt.Errorf("%s: %w", action, err)
	}
	if entry == nil {
		return res, nil
	}

	var price decimal.NullDecimal
	if req.UnitPrice != nil {
		price = decimal.NewNullDecimal(*req.UnitPrice)
	}
	s.afterCommit(ctx, key, actor, entry, price)

	if action == model.ActionDeliveryReceived && res.QuantityAfter > threshold {
		n, err := s.alerts.Resolve(context.WithoutCancel(ctx), key.InventoryID, key.Variation, actor)
		if err != nil {
			s.log.Warn("Failed to resolve stock alerts", zap.Uint("inventory_id", key.InventoryID), zap.Error(err))
		} else if n > 0 {
			s.log.Info("Stock alerts resolved by delivery", zap.Uint("inventory_id", key.InventoryID), zap.String("variation", key.Variation), zap.Int64("resolved", n))
		}
	}
	return res, nil
}

// AdjustStock sets an absolute quantity for manual corrections.
func (s *syncService) AdjustStock(ctx context.Context, req AdjustRequest, actor model.Actor) (MutationResult, error) {
	if req.Quantity < 0 {
		return MutationResult{}, repository.ErrInvalidQuantity
	}
	key, err := repository.NormalizeKey(model.StockKey{InventoryID: req.ItemID, Variation: req.Variation, UnitType: req.UnitType})
	if err != nil {
		return MutationResult{}, err
	}

	res := MutationResult{Requested: req.Quantity}
	var entry *model.InventoryLogEntry
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.itemRepo.FindByID(txCtx, key.InventoryID); err != nil {
			return err
		}
		before, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		if err := s.stockRepo.UpdateStock(txCtx, key, req.Quantity); err != nil {
			return err
		}
		res.Applied = true
		res.QuantityBefore = before
		res.QuantityAfter = req.Quantity

		entry = newLogEntry(key, model.ActionAdjustment, before, req.Quantity-before, StockRequest{Note: req.Note}, actor)
		if err := s.logRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("write inventory log: %w", err)
		}
		return nil
	})
	if err != nil {
		return MutationResult{}, fmt.Errorf("%s: %w", model.ActionAdjustment, err)
	}
	s.afterCommit(ctx, key, actor, entry, decimal.NullDecimal{})
	return res, nil
}

// PlaceOrder creates a pending order when the pool's available stock covers it.
// The ledger row is locked while availability is computed, so concurrent orders
// on one pool cannot both claim the last units. The ledger itself is untouched:
// a pending order only adds to the reserved quantity.
func (s *syncService) PlaceOrder(ctx context.Context, req PlaceOrderRequest, actor model.Actor) (OrderResult, error) {
	key, err := validatedKey(StockRequest{
		ItemID:    req.ItemID,
		Variation: req.Variation,
		UnitType:  req.UnitType,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return OrderResult{}, err
	}

	var result OrderResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.itemRepo.FindByID(txCtx, key.InventoryID); err != nil {
			return err
		}
		ledger, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		reserved, err := s.orderRepo.ReservedQuantity(txCtx, key)
		if err != nil {
			return err
		}
		result.Available = max(ledger-reserved, 0)
		if result.Available < req.Quantity {
			result.Shortfall = req.Quantity - result.Available
			return nil
		}

		order := &model.Order{
			InventoryID:        key.InventoryID,
			Variation:          key.Variation,
			UnitType:           key.UnitType,
			Quantity:           req.Quantity,
			ConfirmationStatus: model.OrderStatusPending,
			CreatedBy:          actor.ID,
		}
		if err := s.orderRepo.Create(txCtx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		result.Order = order
		result.Accepted = true
		result.Available -= req.Quantity
		return nil
	})
	if err != nil {
		return OrderResult{}, fmt.Errorf("place order: %w", err)
	}
	if result.Accepted {
		s.log.Info("Order placed", zap.Uint("order_id", result.Order.ID), zap.Uint("inventory_id", key.InventoryID), zap.Stringer("actor", actor))
		s.bumpOnly(ctx, key, actor)
	}
	return result, nil
}

// CancelOrder cancels a pending or confirmed order. When stock was taken from the
// ledger for it through ReserveStockForOrder, that stock is returned; the
// quantity is re-read inside the transaction and a deleted item only gets the
// status change.
func (s *syncService) CancelOrder(ctx context.Context, orderID uint, actor model.Actor) (OrderResult, error) {
	var (
		result OrderResult
		entry  *model.InventoryLogEntry
		key    model.StockKey
	)
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(txCtx, orderID)
		if err != nil {
			return err
		}
		result.Order = order
		key = model.StockKey{InventoryID: order.InventoryID, Variation: order.Variation, UnitType: order.UnitType}

		switch order.ConfirmationStatus {
		case model.OrderStatusCancelled:
			return nil
		case model.OrderStatusCompleted, model.OrderStatusDelivered:
			return ErrOrderNotCancelable
		}
		if err := s.orderRepo.UpdateStatus(txCtx, order.ID, model.OrderStatusCancelled); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		order.ConfirmationStatus = model.OrderStatusCancelled
		result.Accepted = true

		placed, err := s.logRepo.FindByCorrelation(txCtx, model.ActionOrderPlaced, repository.CorrelationOrder, order.ID)
		if err != nil {
			return err
		}
		if placed == nil {
			return nil
		}
		key = model.StockKey{InventoryID: placed.InventoryID, Variation: placed.Variation, UnitType: placed.UnitType}
		qty := -placed.QuantityChange

		if _, err := s.itemRepo.FindByID(txCtx, key.InventoryID); errors.Is(err, repository.ErrItemNotFound) {
			s.log.Warn("Skipping stock reversal for missing item", zap.Uint("order_id", order.ID), zap.Uint("inventory_id", key.InventoryID))
			return nil
		} else if err != nil {
			return err
		}

		if _, err := s.stockRepo.IncrementStock(txCtx, key, qty); err != nil {
			return err
		}
		after, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		result.Reversal = &MutationResult{
			Applied:        true,
			QuantityBefore: after - qty,
			QuantityAfter:  after,
			Requested:      qty,
		}

		entry = newLogEntry(key, model.ActionStockIn, after-qty, qty,
			StockRequest{OrderID: order.ID, Note: fmt.Sprintf("order %d cancelled", order.ID)}, actor)
		if err := s.logRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("write inventory log: %w", err)
		}
		return nil
	})
	if err != nil {
		return OrderResult{}, fmt.Errorf("cancel order: %w", err)
	}
	switch {
	case entry != nil:
		s.afterCommit(ctx, key, actor, entry, decimal.NullDecimal{})
	case result.Accepted:
		s.bumpOnly(ctx, key, actor)
	}
	return result, nil
}

// UpdateOrderStatus moves an order between statuses. Cancellation goes through
// CancelOrder so the reservation is returned; terminal orders cannot change.
func (s *syncService) UpdateOrderStatus(ctx context.Context, orderID uint, status string, actor model.Actor) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if status == model.OrderStatusCancelled {
		res, err := s.CancelOrder(ctx, orderID, actor)
		return res.Order, err
	}

	var order *model.Order
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		order, err = s.orderRepo.FindByIDForUpdate(txCtx, orderID)
		if err != nil {
			return err
		}
		if !order.IsReserving() {
			return fmt.Errorf("%w: order is %s", ErrInvalidOrderStatus, order.ConfirmationStatus)
		}
		if err := s.orderRepo.UpdateStatus(txCtx, order.ID, status); err != nil {
			return err
		}
		order.ConfirmationStatus = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Availability shifts when an order stops reserving; let clients refresh.
	if !order.IsReserving() {
		s.bumpOnly(ctx, model.StockKey{InventoryID: order.InventoryID, Variation: order.Variation, UnitType: order.UnitType}, actor)
	}
	return order, nil
}

// correlation names the audit column and id that identify a retry of action.
func correlation(action string, req StockRequest) (string, uint) {
	switch action {
	case model.ActionOrderPlaced:
		return repository.CorrelationOrder, req.OrderID
	case model.ActionDeliveryReceived:
		return repository.CorrelationDelivery, req.DeliveryID
	case model.ActionSaleCompleted:
		return repository.CorrelationSale, req.SaleID
	}
	return "", 0
}

// replayed returns the recorded entry for (action, correlation id) when the
// correlation guard is on. The item row is locked before the lookup, so a
// concurrent retry of the same id waits until the first one commits and then
// finds its entry.
func (s *syncService) replayed(txCtx context.Context, action string, key model.StockKey, req StockRequest) (*model.InventoryLogEntry, error) {
	if !s.opts.DedupeCorrelationIDs {
		return nil, nil
	}
	column, id := correlation(action, req)
	if id == 0 {
		return nil, nil
	}
	if _, err := s.itemRepo.FindByIDForUpdate(txCtx, key.InventoryID); err != nil {
		return nil, err
	}
	return s.logRepo.FindByCorrelation(txCtx, action, column, id)
}

// stampCorrelation sets the unique correlation key on entry when the guard is on.
func (s *syncService) stampCorrelation(entry *model.InventoryLogEntry, req StockRequest) {
	if !s.opts.DedupeCorrelationIDs {
		return
	}
	if _, id := correlation(entry.Action, req); id != 0 {
		key := fmt.Sprintf("%s:%d", entry.Action, id)
		entry.CorrelationKey = &key
	}
}

// replayAfterConflict answers a mutation whose audit insert collided with a
// concurrent retry of the same correlation id. Its transaction was rolled back,
// so the recorded outcome is the one that stands.
func (s *syncService) replayAfterConflict(ctx context.Context, action string, req StockRequest) (MutationResult, error) {
	column, id := correlation(action, req)
	prev, err := s.logRepo.FindByCorrelation(ctx, action, column, id)
	if err != nil {
		return MutationResult{}, fmt.Errorf("%s: %w", action, err)
	}
	if prev == nil {
		return MutationResult{}, fmt.Errorf("%s: %w", action, repository.ErrDuplicateCorrelation)
	}
	s.log.Info("Replayed mutation after correlation conflict", zap.String("action", action), zap.Uint("correlation_id", id))
	return replayResult(prev, req.Quantity), nil
}

func replayResult(prev *model.InventoryLogEntry, requested int) MutationResult {
	return MutationResult{
		Applied:        true,
		Replayed:       true,
		QuantityBefore: prev.QuantityBefore,
		QuantityAfter:  prev.QuantityAfter,
		Requested:      requested,
	}
}

func newLogEntry(key model.StockKey, action string, before, change int, req StockRequest, actor model.Actor) *model.InventoryLogEntry {
	entry := &model.InventoryLogEntry{
		InventoryID:    key.InventoryID,
		Variation:      key.Variation,
		UnitType:       key.UnitType,
		Action:         action,
		QuantityBefore: before,
		QuantityChange: change,
		QuantityAfter:  before + change,
		UserID:         actor.ID,
		UserRole:       actor.Role,
		Note:           req.Note,
	}
	if req.OrderID != 0 {
		id := req.OrderID
		entry.OrderID = &id
	}
	if req.DeliveryID != 0 {
		id := req.DeliveryID
		entry.DeliveryID = &id
	}
	if req.SaleID != 0 {
		id := req.SaleID
		entry.SalesTransactionID = &id
	}
	return entry
}

// afterCommit runs the best-effort side effects of a committed mutation. They use
// a context detached from the caller's cancellation and only log failures.
func (s *syncService) afterCommit(ctx context.Context, key model.StockKey, actor model.Actor, entry *model.InventoryLogEntry, price decimal.NullDecimal) {
	ctx = context.WithoutCancel(ctx)

	s.audit.Info("inventory mutation",
		zap.String("action", entry.Action),
		zap.Uint("inventory_id", entry.InventoryID),
		zap.String("variation", entry.Variation),
		zap.String("unit_type", entry.UnitType),
		zap.Int("before", entry.QuantityBefore),
		zap.Int("change", entry.QuantityChange),
		zap.Int("after", entry.QuantityAfter),
		zap.Stringer("actor", actor),
	)

	if _, err := s.changeLog.BumpVersion(ctx, key.InventoryID, actor, key.UnitType, price); err != nil {
		s.log.Warn("Change log bump failed", zap.Uint("inventory_id", key.InventoryID), zap.Error(err))
	}
	if err := s.CheckLowStockAlerts(ctx, key); err != nil {
		s.log.Warn("Low stock evaluation failed", zap.Uint("inventory_id", key.InventoryID), zap.String("variation", key.Variation), zap.Error(err))
	}
}

// bumpOnly publishes a change that moved availability without touching the ledger.
func (s *syncService) bumpOnly(ctx context.Context, key model.StockKey, actor model.Actor) {
	if _, err := s.changeLog.BumpVersion(context.WithoutCancel(ctx), key.InventoryID, actor, model.NormalizeUnitType(key.UnitType), decimal.NullDecimal{}); err != nil {
		s.log.Warn("Change log bump failed", zap.Uint("inventory_id", key.InventoryID), zap.Error(err))
	}
}
