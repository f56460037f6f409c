package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"inventory-sync/config"
	"inventory-sync/internal/database"
	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) Send(_ context.Context, recipient, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, recipient+": "+message)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	db         *gorm.DB
	items      repository.ItemRepository
	stock      repository.StockRepository
	orders     repository.OrderRepository
	logs       repository.InventoryLogRepository
	alertsRepo repository.AlertRepository
	changeRepo repository.ChangeLogRepository
	txm        repository.TransactionManager
	changeLog  ChangeLogService
	alerts     AlertService
	calculator StockCalculator
	sync       SyncService
	itemSvc    ItemService
	notifier   *recordingNotifier
	publisher  *recordingPublisher
	clock      *fakeClock
}

func newTestEnv(t *testing.T, opts SyncOptions) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	db, err := database.NewConnection(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "service.db"),
	}, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	x, err := database.NewSQLX(db, database.DriverSQLite)
	require.NoError(t, err)

	env := &testEnv{
		db:         db,
		items:      repository.NewItemRepository(db),
		stock:      repository.NewStockRepository(db),
		orders:     repository.NewOrderRepository(db),
		logs:       repository.NewInventoryLogRepository(db),
		alertsRepo: repository.NewAlertRepository(db),
		changeRepo: repository.NewChangeLogRepository(db),
		txm:        repository.NewTransactionManager(db),
		notifier:   &recordingNotifier{},
		publisher:  &recordingPublisher{},
		clock:      &fakeClock{now: time.Now().UTC()},
	}
	deduper := &dbDeduper{repo: repository.NewNotificationRepository(db), now: env.clock.Now}

	env.changeLog = NewChangeLogService(env.changeRepo, env.stock, env.txm, log, env.publisher)
	env.alerts = NewAlertService(env.alertsRepo, env.items, env.stock, env.txm, env.notifier, deduper,
		AlertOptions{Recipients: []string{"owner", "manager"}}, log)
	env.calculator = NewStockCalculator(repository.NewAvailabilityRepository(x))
	env.sync = NewSyncService(env.items, env.stock, env.orders, env.logs, env.txm, env.changeLog, env.alerts, opts, log, nil)
	env.itemSvc = NewItemService(env.items, env.stock, env.logs, env.txm, env.changeLog, env.alerts, env.calculator, log)
	return env
}

func (e *testEnv) seedItem(t *testing.T, name string, qty, threshold int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{
		Name:             name,
		Quantity:         qty,
		ReorderThreshold: threshold,
		UnitType:         model.UnitPerPiece,
		UnitPrice:        decimal.RequireFromString("5.00"),
	}
	require.NoError(t, e.items.Create(context.Background(), item))
	return item
}

func (e *testEnv) openAlerts(t *testing.T, itemID uint) []model.AlertRecord {
	t.Helper()
	var alerts []model.AlertRecord
	require.NoError(t, e.db.Where("inventory_id = ? AND is_resolved = ?", itemID, false).Find(&alerts).Error)
	return alerts
}

var staff = model.Actor{ID: "12", Role: "staff"}
