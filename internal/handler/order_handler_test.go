package handler

import (
	"fmt"
	"testing"

	"go-fabshop-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, env *testEnv, ptID, scID uint) model.Order {
	t.Helper()

	var order model.Order
	status := env.request(t, "POST", "/api/orders", map[string]interface{}{
		"customerName":  "Mario Rossi",
		"productTypeId": ptID,
		"subCategoryId": scID,
		"dimensions":    "100x200",
		"color":         "Rosso",
	}, &order)
	require.Equal(t, 201, status)
	return order
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)

	order := createTestOrder(t, env, ptID, scID)

	assert.InDelta(t, 55.0, order.PriceTotal, 1e-9)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 1, order.Quantity)
	assert.NotEmpty(t, order.Barcode)
}

func TestCreateOrderBadDimensions(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)

	var body map[string]interface{}
	status := env.request(t, "POST", "/api/orders", map[string]interface{}{
		"customerName":  "Mario Rossi",
		"productTypeId": ptID,
		"subCategoryId": scID,
		"dimensions":    "100-200",
		"color":         "Rosso",
	}, &body)

	assert.Equal(t, 400, status)
	assert.Contains(t, body, "error")
}

func TestGetOrderByBarcodeEndpoint(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)
	order := createTestOrder(t, env, ptID, scID)

	var detail model.OrderDetail
	status := env.request(t, "GET", "/api/orders/barcode/"+order.Barcode, nil, &detail)
	require.Equal(t, 200, status)
	assert.Equal(t, order.ID, detail.ID)
	assert.Equal(t, "Zanzariera", detail.ProductTypeName)
	assert.Equal(t, "Molla", detail.SubCategoryName)
	assert.Nil(t, detail.AssignedWorkerName)

	status = env.request(t, "GET", "/api/orders/barcode/0000000000000", nil, nil)
	assert.Equal(t, 404, status)
}

func TestUpdateStatusEndpointStickyAssignment(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)
	order := createTestOrder(t, env, ptID, scID)

	worker := model.Worker{Username: "paolo", AccessCode: "1234"}
	require.NoError(t, env.db.Create(&worker).Error)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)

	var updated model.Order
	status := env.request(t, "PATCH", path, map[string]interface{}{
		"status":   "in_lavorazione",
		"workerId": worker.ID,
	}, &updated)
	require.Equal(t, 200, status)
	require.NotNil(t, updated.AssignedWorkerID)
	assert.Equal(t, worker.ID, *updated.AssignedWorkerID)

	// Omitting workerId keeps the previous assignment.
	status = env.request(t, "PATCH", path, map[string]interface{}{
		"status": "pronto",
	}, &updated)
	require.Equal(t, 200, status)
	assert.Equal(t, "pronto", updated.Status)
	require.NotNil(t, updated.AssignedWorkerID)
	assert.Equal(t, worker.ID, *updated.AssignedWorkerID)
}

func TestUpdateStatusEndpointUnknownOrder(t *testing.T) {
	env := setupTestApp(t)

	status := env.request(t, "PATCH", "/api/orders/9999/status", map[string]interface{}{
		"status": "pronto",
	}, nil)
	assert.Equal(t, 404, status)
}

func TestUpdatePriceEndpointSetAndClear(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)
	order := createTestOrder(t, env, ptID, scID)

	path := fmt.Sprintf("/api/orders/%d/price", order.ID)

	var updated model.Order
	status := env.request(t, "PATCH", path, map[string]interface{}{
		"manualPrice": 99.5,
	}, &updated)
	require.Equal(t, 200, status)
	require.NotNil(t, updated.ManualPrice)
	assert.Equal(t, 99.5, *updated.ManualPrice)
	assert.InDelta(t, 55.0, updated.PriceTotal, 1e-9)

	// Null clears the override.
	status = env.request(t, "PATCH", path, map[string]interface{}{
		"manualPrice": nil,
	}, &updated)
	require.Equal(t, 200, status)
	assert.Nil(t, updated.ManualPrice)
}

func TestListOrdersEndpoint(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)
	order := createTestOrder(t, env, ptID, scID)

	status := env.request(t, "PATCH", fmt.Sprintf("/api/orders/%d/price", order.ID), map[string]interface{}{
		"manualPrice": 42.0,
	}, nil)
	require.Equal(t, 200, status)

	var rows []model.OrderRow
	status = env.request(t, "GET", "/api/orders", nil, &rows)
	require.Equal(t, 200, status)
	require.Len(t, rows, 1)
	assert.Equal(t, order.ID, rows[0].ID)
	assert.Equal(t, "Zanzariera", rows[0].ProductTypeName)
	assert.Equal(t, 42.0, rows[0].EffectivePrice)
	assert.InDelta(t, 55.0, rows[0].PriceTotal, 1e-9)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	env := setupTestApp(t)
	ptID, scID := env.seedCatalog(t)
	order := createTestOrder(t, env, ptID, scID)

	status := env.request(t, "DELETE", fmt.Sprintf("/api/orders/%d", order.ID), nil, nil)
	assert.Equal(t, 204, status)

	var rows []model.OrderRow
	status = env.request(t, "GET", "/api/orders", nil, &rows)
	require.Equal(t, 200, status)
	assert.Empty(t, rows)
}
