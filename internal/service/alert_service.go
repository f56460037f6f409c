package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"go.uber.org/zap"
)

const DefaultNotificationWindow = 30 * time.Minute

// AlertOutcome reports what one evaluation did.
type AlertOutcome struct {
	AlertType string `json:"alert_type,omitempty"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
	Created   bool   `json:"created"`
	Critical  bool   `json:"critical"`
	Notified  int    `json:"notified"`
}

type AlertService interface {
	Evaluate(ctx context.Context, key model.StockKey) (AlertOutcome, error)
	Resolve(ctx context.Context, itemID uint, variation string, actor model.Actor) (int64, error)
	ResolveByID(ctx context.Context, id uint, actor model.Actor) error
	RaiseReorder(ctx context.Context, itemID uint, variation string, actor model.Actor) (*model.AlertRecord, error)
	ListUnresolved(ctx context.Context, page, limit int) ([]model.AlertRecord, int64, error)
}

type AlertOptions struct {
	Recipients     []string
	Window         time.Duration
	NotifySupplier bool
}

type alertService struct {
	alertRepo repository.AlertRepository
	itemRepo  repository.ItemRepository
	stockRepo repository.StockRepository
	txManager repository.TransactionManager
	notifier  Notifier
	deduper   NotificationDeduper
	opts      AlertOptions
	log       *zap.Logger
	now       func() time.Time
}

func NewAlertService(
	alertRepo repository.AlertRepository,
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	txManager repository.TransactionManager,
	notifier Notifier,
	deduper NotificationDeduper,
	opts AlertOptions,
	log *zap.Logger,
) AlertService {
	if opts.Window <= 0 {
		opts.Window = DefaultNotificationWindow
	}
	return &alertService{
		alertRepo: alertRepo,
		itemRepo:  itemRepo,
		stockRepo: stockRepo,
		txManager: txManager,
		notifier:  notifier,
		deduper:   deduper,
		opts:      opts,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// classify returns the alert type for qty against threshold, or "" when stock is
// above the threshold.
func classify(qty, threshold int) string {
	switch {
	case qty <= 0:
		return model.AlertOutOfStock
	case qty <= threshold:
		return model.AlertLowStock
	default:
		return ""
	}
}

// isCritical reports qty == 0 or qty <= ceil(threshold/2).
func isCritical(qty, threshold int) bool {
	return qty <= 0 || qty <= (threshold+1)/2
}

type pendingNotification struct {
	recipient string
	alertKey  string
	message   string
}

// Evaluate compares the pool's quantity with the item's reorder threshold. The
// ledger row stays locked while the open-alert check and insert run, so two
// evaluations of the same pool cannot both create an alert. Stock above the
// threshold leaves existing alerts untouched.
func (s *alertService) Evaluate(ctx context.Context, key model.StockKey) (AlertOutcome, error) {
	key, err := repository.NormalizeKey(key)
	if err != nil {
		return AlertOutcome{}, err
	}

	var (
		outcome AlertOutcome
		pending []pendingNotification
	)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.itemRepo.FindByID(txCtx, key.InventoryID)
		if err != nil {
			return err
		}
		qty, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}
		if !key.IsBase() {
			if _, err := s.stockRepo.GetVariation(txCtx, key); errors.Is(err, repository.ErrVariationNotFound) {
				return nil
			} else if err != nil {
				return err
			}
		}

		outcome.Quantity = qty
		outcome.Threshold = item.ReorderThreshold
		outcome.AlertType = classify(qty, item.ReorderThreshold)
		if outcome.AlertType == "" {
			return nil
		}

		existing, err := s.alertRepo.FindOpen(txCtx, key.InventoryID, key.Variation, outcome.AlertType)
		if err != nil {
			return err
		}
		alert := existing
		if alert == nil {
			alert = &model.AlertRecord{
				InventoryID: key.InventoryID,
				Variation:   key.Variation,
				AlertType:   outcome.AlertType,
				Quantity:    qty,
				Threshold:   item.ReorderThreshold,
				Message:     alertMessage(item, key, outcome.AlertType, qty),
				AlertDate:   s.now(),
			}
			if err := s.alertRepo.Create(txCtx, alert); err != nil {
				return fmt.Errorf("create alert: %w", err)
			}
			outcome.Created = true
		}

		outcome.Critical = isCritical(qty, item.ReorderThreshold)
		if !outcome.Critical {
			return nil
		}
		message := alertMessage(item, key, outcome.AlertType, qty)
		for _, recipient := range s.recipients(item) {
			ok, err := s.deduper.Acquire(txCtx, recipient, alert.Key(), message, s.opts.Window)
			if err != nil {
				s.log.Warn("Notification de-dup check failed", zap.String("recipient", recipient), zap.Error(err))
				continue
			}
			if ok {
				pending = append(pending, pendingNotification{recipient: recipient, alertKey: alert.Key(), message: message})
			}
		}
		return nil
	})
	if err != nil {
		return AlertOutcome{}, err
	}

	for _, n := range pending {
		if err := s.notifier.Send(ctx, n.recipient, n.message); err != nil {
			s.log.Warn("Failed to send stock notification", zap.String("recipient", n.recipient), zap.Error(err))
			if err := s.deduper.Release(context.WithoutCancel(ctx), n.recipient, n.alertKey, s.opts.Window); err != nil {
				s.log.Warn("Failed to release notification slot", zap.String("recipient", n.recipient), zap.Error(err))
			}
			continue
		}
		outcome.Notified++
	}
	return outcome, nil
}

func (s *alertService) recipients(item *model.InventoryItem) []string {
	out := append([]string(nil), s.opts.Recipients...)
	if s.opts.NotifySupplier && item.SupplierID != nil {
		out = append(out, fmt.Sprintf("supplier:%d", *item.SupplierID))
	}
	return out
}

func alertMessage(item *model.InventoryItem, key model.StockKey, alertType string, qty int) string {
	name := item.Name
	if !key.IsBase() {
		name = fmt.Sprintf("%s (%s)", item.Name, key.Variation)
	}
	switch alertType {
	case model.AlertOutOfStock:
		return fmt.Sprintf("%s is out of stock", name)
	case model.AlertReorder:
		return fmt.Sprintf("Reorder requested for %s, %d left", name, qty)
	default:
		return fmt.Sprintf("%s is low on stock: %d left (threshold %d)", name, qty, item.ReorderThreshold)
	}
}

// Resolve closes the open low_stock and out_of_stock alerts of (item, variation).
func (s *alertService) Resolve(ctx context.Context, itemID uint, variation string, actor model.Actor) (int64, error) {
	return s.alertRepo.ResolveOpen(ctx, itemID, variation,
		[]string{model.AlertLowStock, model.AlertOutOfStock}, actor.String(), s.now())
}

func (s *alertService) ResolveByID(ctx context.Context, id uint, actor model.Actor) error {
	return s.alertRepo.ResolveByID(ctx, id, actor.String(), s.now())
}

// RaiseReorder opens a reorder alert unless one is already open.
func (s *alertService) RaiseReorder(ctx context.Context, itemID uint, variation string, actor model.Actor) (*model.AlertRecord, error) {
	var alert *model.AlertRecord
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.itemRepo.FindByID(txCtx, itemID)
		if err != nil {
			return err
		}
		key := model.StockKey{InventoryID: itemID, Variation: variation}
		qty, err := s.stockRepo.LockStock(txCtx, key)
		if err != nil {
			return err
		}

		alert, err = s.alertRepo.FindOpen(txCtx, itemID, variation, model.AlertReorder)
		if err != nil || alert != nil {
			return err
		}
		alert = &model.AlertRecord{
			InventoryID: itemID,
			Variation:   variation,
			AlertType:   model.AlertReorder,
			Quantity:    qty,
			Threshold:   item.ReorderThreshold,
			Message:     alertMessage(item, key, model.AlertReorder, qty),
			AlertDate:   s.now(),
		}
		return s.alertRepo.Create(txCtx, alert)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Reorder alert raised", zap.Uint("inventory_id", itemID), zap.String("variation", variation), zap.Stringer("actor", actor))
	return alert, nil
}

func (s *alertService) ListUnresolved(ctx context.Context, page, limit int) ([]model.AlertRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.alertRepo.ListOpen(ctx, page, limit)
}
