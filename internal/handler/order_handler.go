package handler

import (
	"go-fabshop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrders handles GET /api/orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// CreateOrder handles POST /api/orders. Pricing and barcode assignment
// happen in the service; a barcode collision comes back as 409 and the
// caller simply re-submits.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(order)
}

// UpdateStatusRequest carries a status change. A missing workerId keeps the
// current assignment; a present one reassigns the order.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	WorkerID *uint  `json:"workerId"`
}

// UpdateStatus handles PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.orderService.UpdateStatus(id, req.Status, req.WorkerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// UpdatePrice handles PATCH /api/orders/:id/price. A null or absent
// manualPrice clears the override, making the computed total effective
// again.
func (h *OrderHandler) UpdatePrice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req struct {
		ManualPrice *float64 `json:"manualPrice"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.orderService.SetManualPrice(id, req.ManualPrice)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// GetOrderByBarcode handles GET /api/orders/barcode/:barcode
func (h *OrderHandler) GetOrderByBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	order, err := h.orderService.GetOrderByBarcode(barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// DeleteOrder handles DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}
