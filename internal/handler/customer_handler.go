package handler

import (
	"errors"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const suggestLimit = 10

type CustomerHandler struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerHandler(customerRepo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// GetCustomers handles GET /api/customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// SuggestCustomers handles GET /api/customers/suggest?q=
// Case-insensitive prefix search for the order form's autocomplete.
func (h *CustomerHandler) SuggestCustomers(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(400).JSON(fiber.Map{"error": "q query parameter is required"})
	}

	customers, err := h.customerRepo.SearchByPrefix(q, suggestLimit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	// Names are unique regardless of casing; the lowercase lookup catches
	// what the column's unique index cannot.
	if _, err := h.customerRepo.FindByNameFold(req.Name); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "customer name already exists"})
	}

	customer := model.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := h.customerRepo.Create(&customer); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(customer)
}

// UpdateCustomer handles PUT /api/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	customer, err := h.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "customer not found"})
	}
	if err != nil {
		return respondError(c, err)
	}

	if existing, err := h.customerRepo.FindByNameFold(req.Name); err == nil && existing.ID != customer.ID {
		return c.Status(409).JSON(fiber.Map{"error": "customer name already exists"})
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	if err := h.customerRepo.Update(customer); err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// DeleteCustomer handles DELETE /api/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	if err := h.customerRepo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}
