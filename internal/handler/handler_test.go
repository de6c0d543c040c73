package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"
	"go-fabshop-api/internal/service"
	"go-fabshop-api/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv is an in-memory instance of the whole API, wired the same way
// cmd/api does it.
type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(
		&model.ProductType{},
		&model.SubCategory{},
		&model.ColorIncrement{},
		&model.PriceList{},
		&model.Customer{},
		&model.Worker{},
		&model.Order{},
		&model.WorkStatus{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	hub := ws.NewHub()
	go hub.Run()

	productTypeRepo := repository.NewProductTypeRepo(db)
	subCategoryRepo := repository.NewSubCategoryRepo(db)
	colorRepo := repository.NewColorIncrementRepo(db)
	priceListRepo := repository.NewPriceListRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	workerRepo := repository.NewWorkerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	workStatusRepo := repository.NewWorkStatusRepo(db)

	orderService := service.NewOrderService(orderRepo, priceListRepo, colorRepo, hub)
	authService := service.NewAuthService(workerRepo)

	catalogHandler := NewCatalogHandler(productTypeRepo, subCategoryRepo, colorRepo)
	priceListHandler := NewPriceListHandler(priceListRepo)
	customerHandler := NewCustomerHandler(customerRepo)
	workerHandler := NewWorkerHandler(workerRepo, authService)
	orderHandler := NewOrderHandler(orderService)
	workStatusHandler := NewWorkStatusHandler(workStatusRepo)

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/product-types", catalogHandler.GetProductTypes)
	api.Post("/product-types", catalogHandler.CreateProductType)
	api.Get("/sub-categories", catalogHandler.GetSubCategories)
	api.Post("/sub-categories", catalogHandler.CreateSubCategory)
	api.Get("/color-increments", catalogHandler.GetColorIncrements)
	api.Post("/color-increments", catalogHandler.CreateColorIncrement)

	api.Get("/price-lists", priceListHandler.GetPriceLists)
	api.Post("/price-lists", priceListHandler.CreatePriceList)
	api.Put("/price-lists/:id", priceListHandler.UpdatePriceList)
	api.Delete("/price-lists/:id", priceListHandler.DeletePriceList)

	api.Get("/customers", customerHandler.GetCustomers)
	api.Get("/customers/suggest", customerHandler.SuggestCustomers)
	api.Post("/customers", customerHandler.CreateCustomer)
	api.Put("/customers/:id", customerHandler.UpdateCustomer)
	api.Delete("/customers/:id", customerHandler.DeleteCustomer)

	api.Post("/worker-login", workerHandler.Login)
	api.Post("/worker-login/validate", workerHandler.ValidateToken)
	api.Get("/workers", workerHandler.GetWorkers)
	api.Post("/workers", workerHandler.CreateWorker)
	api.Delete("/workers/:id", workerHandler.DeleteWorker)

	api.Get("/orders", orderHandler.GetOrders)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	api.Patch("/orders/:id/price", orderHandler.UpdatePrice)
	api.Get("/orders/barcode/:barcode", orderHandler.GetOrderByBarcode)
	api.Delete("/orders/:id", orderHandler.DeleteOrder)

	api.Get("/work-statuses", workStatusHandler.GetWorkStatuses)
	api.Post("/work-statuses", workStatusHandler.CreateWorkStatus)

	return &testEnv{app: app, db: db}
}

// seedCatalog inserts a product type, sub-category, price list row and color
// increment, returning the type and sub-category IDs.
func (e *testEnv) seedCatalog(t *testing.T) (uint, uint) {
	t.Helper()

	pt := model.ProductType{Name: "Zanzariera"}
	require.NoError(t, e.db.Create(&pt).Error)
	sc := model.SubCategory{ProductTypeID: pt.ID, Name: "Molla"}
	require.NoError(t, e.db.Create(&sc).Error)
	require.NoError(t, e.db.Create(&model.PriceList{
		ProductTypeID: pt.ID,
		SubCategoryID: &sc.ID,
		PricePerSqm:   25.0,
	}).Error)
	require.NoError(t, e.db.Create(&model.ColorIncrement{Color: "Rosso", PercentIncrement: 10}).Error)
	return pt.ID, sc.ID
}

// request performs an HTTP call against the app and decodes the JSON response
// into out (skipped when out is nil or the body is empty).
func (e *testEnv) request(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}
