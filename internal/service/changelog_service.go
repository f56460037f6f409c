package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const EventInventoryChanged = "inventory_changed"

// InventoryEvent is the payload pushed to websocket clients and the broker.
type InventoryEvent struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// EventPublisher fans change events out of the process. Publish is called after
// every committed mutation and must return promptly; wrap network sinks in an
// AsyncPublisher.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type PollRequest struct {
	ItemID      uint  `form:"item_id"`
	LastVersion int64 `form:"last_version"`
	LastMtime   int64 `form:"last_mtime"`
}

type PollResponse struct {
	InventoryMtime int64  `json:"inventory_mtime"`
	LatestVersion  int64  `json:"latest_version"`
	Checksum       string `json:"checksum"`
	Changed        bool   `json:"changed"`
}

type VariationUpdate struct {
	InventoryID uint               `json:"inventory_id"`
	Version     int64              `json:"version"`
	PricesMap   map[string]*string `json:"prices_map"`
	UnitTypeMap map[string]string  `json:"unit_type_map"`
	StockMap    map[string]int     `json:"stock_map"`
	LastUpdated time.Time          `json:"last_updated"`
}

// ChangeLogService maintains the per-item version counter polling clients use to
// detect stale views. Its failures never reach the mutation that triggered them.
type ChangeLogService interface {
	BumpVersion(ctx context.Context, itemID uint, actor model.Actor, unitType string, unitPrice decimal.NullDecimal) (int64, error)
	Get(ctx context.Context, itemID uint) (*model.ChangeLogRecord, error)
	VersionMap(ctx context.Context) (map[uint]int64, error)
	MarkDeleted(ctx context.Context, itemID uint) error
	Poll(ctx context.Context, req PollRequest) (PollResponse, error)
	VariationUpdatesSince(ctx context.Context, since time.Time) ([]VariationUpdate, error)
}

type changeLogService struct {
	repo       repository.ChangeLogRepository
	stockRepo  repository.StockRepository
	txManager  repository.TransactionManager
	publishers []EventPublisher
	log        *zap.Logger
	now        func() time.Time
}

func NewChangeLogService(
	repo repository.ChangeLogRepository,
	stockRepo repository.StockRepository,
	txManager repository.TransactionManager,
	log *zap.Logger,
	publishers ...EventPublisher,
) ChangeLogService {
	return &changeLogService{
		repo:       repo,
		stockRepo:  stockRepo,
		txManager:  txManager,
		publishers: publishers,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// BumpVersion increments the item's version and replaces its variation snapshot
// in one short transaction, then publishes the change.
func (s *changeLogService) BumpVersion(ctx context.Context, itemID uint, actor model.Actor, unitType string, unitPrice decimal.NullDecimal) (int64, error) {
	var version int64
	at := s.now()
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := s.repo.Bump(txCtx, itemID, repository.ChangeMeta{
			Actor:     actor,
			UnitType:  unitType,
			UnitPrice: unitPrice,
			At:        at,
		})
		if err != nil {
			return fmt.Errorf("bump version: %w", err)
		}
		version = v

		rows, err := s.stockRepo.ListVariations(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("list variations: %w", err)
		}
		if err := s.repo.SaveSnapshot(txCtx, itemID, snapshotVariants(rows, unitType)); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publish(ctx, itemID, map[string]interface{}{
		"inventory_id": itemID,
		"version":      version,
		"changed_by":   actor,
		"unit_type":    unitType,
		"timestamp":    at.Unix(),
	})
	return version, nil
}

// snapshotVariants keys rows by variation name. When the same name exists under
// several unit types the row in preferredUnit wins.
func snapshotVariants(rows []model.VariationStock, preferredUnit string) map[string]model.VariantSnapshot {
	variants := make(map[string]model.VariantSnapshot, len(rows))
	for _, row := range rows {
		if existing, ok := variants[row.Variation]; ok && existing.UnitType == preferredUnit {
			continue
		}
		snap := model.VariantSnapshot{
			UnitType:    row.UnitType,
			Stock:       row.Quantity,
			LastUpdated: row.LastUpdated,
		}
		if row.UnitPrice.Valid {
			price := row.UnitPrice.Decimal.StringFixed(2)
			snap.UnitPrice = &price
		}
		variants[row.Variation] = snap
	}
	return variants
}

func (s *changeLogService) publish(ctx context.Context, itemID uint, data map[string]interface{}) {
	if len(s.publishers) == 0 {
		return
	}
	payload, err := json.Marshal(InventoryEvent{Event: EventInventoryChanged, Data: data})
	if err != nil {
		s.log.Warn("Failed to encode change event", zap.Uint("inventory_id", itemID), zap.Error(err))
		return
	}
	key := strconv.FormatUint(uint64(itemID), 10)
	for _, p := range s.publishers {
		if err := p.Publish(ctx, key, payload); err != nil {
			s.log.Warn("Failed to publish change event", zap.Uint("inventory_id", itemID), zap.Error(err))
		}
	}
}

func (s *changeLogService) Get(ctx context.Context, itemID uint) (*model.ChangeLogRecord, error) {
	return s.repo.Get(ctx, itemID)
}

func (s *changeLogService) VersionMap(ctx context.Context) (map[uint]int64, error) {
	return s.repo.VersionMap(ctx)
}

func (s *changeLogService) MarkDeleted(ctx context.Context, itemID uint) error {
	if err := s.repo.MarkDeleted(ctx, itemID, s.now()); err != nil {
		return err
	}
	s.publish(ctx, itemID, map[string]interface{}{
		"inventory_id": itemID,
		"deleted":      true,
	})
	return nil
}

// Poll answers a client holding (last_version, last_mtime). With ItemID set the
// version and mtime are that item's; otherwise they are the maxima over all items.
func (s *changeLogService) Poll(ctx context.Context, req PollRequest) (PollResponse, error) {
	versions, err := s.repo.VersionMap(ctx)
	if err != nil {
		return PollResponse{}, fmt.Errorf("load version map: %w", err)
	}
	resp := PollResponse{Checksum: versionChecksum(versions)}

	if req.ItemID != 0 {
		rec, err := s.repo.Get(ctx, req.ItemID)
		switch {
		case err == nil:
			resp.LatestVersion = rec.Version
			resp.InventoryMtime = rec.UpdatedAt.Unix()
		case errors.Is(err, repository.ErrItemNotFound):
		default:
			return PollResponse{}, fmt.Errorf("load change record: %w", err)
		}
	} else {
		for _, v := range versions {
			if v > resp.LatestVersion {
				resp.LatestVersion = v
			}
		}
		mtime, err := s.repo.LatestMtime(ctx)
		if err != nil {
			return PollResponse{}, fmt.Errorf("load mtime: %w", err)
		}
		if !mtime.IsZero() {
			resp.InventoryMtime = mtime.Unix()
		}
	}

	resp.Changed = resp.LatestVersion > req.LastVersion || resp.InventoryMtime > req.LastMtime
	return resp, nil
}

// versionChecksum hashes the version map in a stable order.
func versionChecksum(versions map[uint]int64) string {
	ids := make([]uint, 0, len(versions))
	for id := range versions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%d\n", id, versions[id])
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}

func (s *changeLogService) VariationUpdatesSince(ctx context.Context, since time.Time) ([]VariationUpdate, error) {
	records, err := s.repo.ChangedSince(ctx, since.UTC())
	if err != nil {
		return nil, err
	}
	updates := make([]VariationUpdate, 0, len(records))
	for _, rec := range records {
		u := VariationUpdate{
			InventoryID: rec.InventoryID,
			Version:     rec.Version,
			PricesMap:   make(map[string]*string, len(rec.Variants)),
			UnitTypeMap: make(map[string]string, len(rec.Variants)),
			StockMap:    make(map[string]int, len(rec.Variants)),
			LastUpdated: rec.UpdatedAt,
		}
		for name, v := range rec.Variants {
			u.PricesMap[name] = v.UnitPrice
			u.UnitTypeMap[name] = v.UnitType
			u.StockMap[name] = v.Stock
		}
		updates = append(updates, u)
	}
	return updates, nil
}
