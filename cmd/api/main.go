package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-fabshop-api/internal/handler"
	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"
	"go-fabshop-api/internal/service"
	"go-fabshop-api/internal/ws"
	"go-fabshop-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.ProductType{},
		&model.SubCategory{},
		&model.ColorIncrement{},
		&model.PriceList{},
		&model.Customer{},
		&model.Worker{},
		&model.Order{},
		&model.WorkStatus{},
	); err != nil {
		log.Fatal("Failed to migrate database schema: ", err)
	}

	// 3. Bootstrap default catalog, colors, admin worker. Idempotent: every
	// insert is guarded by an existence check, and a failed bootstrap never
	// stops the server.
	seedDefaults(db)

	// 4. Setup WebSocket Hub for live order events
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productTypeRepo := repository.NewProductTypeRepo(db)
	subCategoryRepo := repository.NewSubCategoryRepo(db)
	colorRepo := repository.NewColorIncrementRepo(db)
	priceListRepo := repository.NewPriceListRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	workerRepo := repository.NewWorkerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	workStatusRepo := repository.NewWorkStatusRepo(db)

	orderService := service.NewOrderService(orderRepo, priceListRepo, colorRepo, wsHub)
	authService := service.NewAuthService(workerRepo)

	catalogHandler := handler.NewCatalogHandler(productTypeRepo, subCategoryRepo, colorRepo)
	priceListHandler := handler.NewPriceListHandler(priceListRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	workerHandler := handler.NewWorkerHandler(workerRepo, authService)
	orderHandler := handler.NewOrderHandler(orderService)
	workStatusHandler := handler.NewWorkStatusHandler(workStatusRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Fabshop Order Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("Fabshop backend running on port %s", port))
	})

	// 7. Routes. The surface is deliberately unauthenticated apart from the
	// worker-login endpoints: this runs on the shop LAN for a trusted crew.
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

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
