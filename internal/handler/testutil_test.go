package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"inventory-sync/config"
	"inventory-sync/internal/database"
	"inventory-sync/internal/middleware"
	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"
	"inventory-sync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const testSecret = "handler-test-secret"

type apiResponse struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	items  repository.ItemRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.InitAuth(testSecret)
	log := zaptest.NewLogger(t)

	db, err := database.NewConnection(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "handler.db"),
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

	itemRepo := repository.NewItemRepository(db)
	stockRepo := repository.NewStockRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)
	txm := repository.NewTransactionManager(db)

	changeLog := service.NewChangeLogService(repository.NewChangeLogRepository(db), stockRepo, txm, log)
	alerts := service.NewAlertService(repository.NewAlertRepository(db), itemRepo, stockRepo, txm,
		service.NewLogNotifier(log), service.NewDBDeduper(repository.NewNotificationRepository(db)),
		service.AlertOptions{Recipients: []string{"owner"}}, log)
	calculator := service.NewStockCalculator(repository.NewAvailabilityRepository(x))
	syncSvc := service.NewSyncService(itemRepo, stockRepo, orderRepo, logRepo, txm, changeLog, alerts, service.SyncOptions{}, log, nil)
	itemSvc := service.NewItemService(itemRepo, stockRepo, logRepo, txm, changeLog, alerts, calculator, log)

	router := gin.New()
	api := router.Group("")
	NewInventoryHandler(syncSvc, itemSvc, calculator, alerts, log).RegisterRoutes(api)
	NewItemHandler(itemSvc, log).RegisterRoutes(api)
	NewOrderHandler(syncSvc, service.NewOrderService(orderRepo), log).RegisterRoutes(api)
	NewChangeFeedHandler(changeLog, log).RegisterRoutes(api)
	NewAlertHandler(alerts, log).RegisterRoutes(api)
	NewInventoryLogHandler(service.NewInventoryLogService(logRepo), log).RegisterRoutes(api)

	return &testServer{router: router, db: db, items: itemRepo}
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  7,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func (s *testServer) do(t *testing.T, role, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, role))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var res apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func (s *testServer) seedItem(t *testing.T, qty, threshold int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{
		Name:             "Widget",
		Quantity:         qty,
		ReorderThreshold: threshold,
		UnitType:         model.UnitPerPiece,
		UnitPrice:        decimal.RequireFromString("3.50"),
	}
	require.NoError(t, s.items.Create(t.Context(), item))
	return item
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}
