package handler

import (
	"fmt"
	"net/http"
	"testing"

	"inventory-sync/internal/middleware"
	"inventory-sync/internal/model"
	"inventory-sync/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFeedHandler_PollAfterMutation(t *testing.T) {
	s := newTestServer(t)
	item := s.seedItem(t, 5, 0)

	code, res := s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/poll?last_version=0&last_mtime=0", nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var before service.PollResponse
	decode(t, res.Data, &before)
	assert.False(t, before.Changed)

	code, res = s.do(t, middleware.RoleStaff, http.MethodPost, fmt.Sprintf("/api/inventory/%d/stock-in", item.ID),
		map[string]interface{}{"quantity": 2})
	require.Equal(t, http.StatusOK, code, res.Error)

	code, res = s.do(t, middleware.RoleSupplier, http.MethodGet,
		fmt.Sprintf("/api/changes/poll?item_id=%d&last_version=0&last_mtime=0", item.ID), nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var after service.PollResponse
	decode(t, res.Data, &after)
	assert.True(t, after.Changed)
	assert.Equal(t, int64(1), after.LatestVersion)
	assert.NotEmpty(t, after.Checksum)

	code, res = s.do(t, middleware.RoleStaff, http.MethodGet, fmt.Sprintf("/api/changes/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var rec model.ChangeLogRecord
	decode(t, res.Data, &rec)
	assert.Equal(t, int64(1), rec.Version)

	code, res = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/versions", nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var versions map[string]int64
	decode(t, res.Data, &versions)
	assert.Equal(t, int64(1), versions[fmt.Sprint(item.ID)])

	code, _ = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/poll?last_version=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChangeFeedHandler_VariationUpdates(t *testing.T) {
	s := newTestServer(t)
	item := s.seedItem(t, 0, 0)

	code, res := s.do(t, middleware.RoleStaff, http.MethodPost, fmt.Sprintf("/api/inventory/%d/deliveries", item.ID),
		map[string]interface{}{"variation": "Blue", "unit_type": model.UnitPerMeter, "quantity": 3, "unit_price": "1.25"})
	require.Equal(t, http.StatusOK, code, res.Error)

	code, res = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/variations?since=0", nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var updates []service.VariationUpdate
	decode(t, res.Data, &updates)
	require.Len(t, updates, 1)
	assert.Equal(t, item.ID, updates[0].InventoryID)
	assert.Equal(t, model.UnitPerMeter, updates[0].UnitTypeMap["Blue"])
	require.NotNil(t, updates[0].PricesMap["Blue"])
	assert.Equal(t, "1.25", *updates[0].PricesMap["Blue"])

	code, _ = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/changes/variations?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestInventoryLogHandler_Filters(t *testing.T) {
	s := newTestServer(t)
	item := s.seedItem(t, 5, 0)

	code, res := s.do(t, middleware.RoleStaff, http.MethodPost, fmt.Sprintf("/api/inventory/%d/stock-in", item.ID),
		map[string]interface{}{"quantity": 1})
	require.Equal(t, http.StatusOK, code, res.Error)
	code, res = s.do(t, middleware.RoleStaff, http.MethodPost, fmt.Sprintf("/api/inventory/%d/stock-out", item.ID),
		map[string]interface{}{"quantity": 2})
	require.Equal(t, http.StatusOK, code, res.Error)

	code, _ = s.do(t, middleware.RoleStaff, http.MethodGet, "/api/inventory-logs", nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, res = s.do(t, middleware.RoleAdmin, http.MethodGet,
		fmt.Sprintf("/api/inventory-logs?inventory_id=%d&action=%s", item.ID, model.ActionStockOut), nil)
	require.Equal(t, http.StatusOK, code, res.Error)
	var page struct {
		Logs  []model.InventoryLogEntry `json:"logs"`
		Total int64                     `json:"total"`
	}
	decode(t, res.Data, &page)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, -2, page.Logs[0].QuantityChange)
	assert.Equal(t, "7", page.Logs[0].UserID)
	assert.Equal(t, middleware.RoleStaff, page.Logs[0].UserRole)

	code, _ = s.do(t, middleware.RoleAdmin, http.MethodGet, "/api/inventory-logs?from=last-week", nil)
	assert.Equal(t, http.StatusBadRequest, code)

}
