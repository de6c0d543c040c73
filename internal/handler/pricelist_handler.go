package handler

import (
	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PriceListHandler struct {
	priceListRepo repository.PriceListRepository
}

func NewPriceListHandler(priceListRepo repository.PriceListRepository) *PriceListHandler {
	return &PriceListHandler{priceListRepo: priceListRepo}
}

// GetPriceLists handles GET /api/price-lists?customerId=
func (h *PriceListHandler) GetPriceLists(c *fiber.Ctx) error {
	customerID, err := parseUintQuery(c, "customerId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customerId"})
	}

	lists, err := h.priceListRepo.FindAll(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lists)
}

// CreatePriceList handles POST /api/price-lists
func (h *PriceListHandler) CreatePriceList(c *fiber.Ctx) error {
	var req struct {
		CustomerID    *uint   `json:"customerId"`
		ProductTypeID uint    `json:"productTypeId"`
		SubCategoryID *uint   `json:"subCategoryId"`
		PricePerSqm   float64 `json:"pricePerSqm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductTypeID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "productTypeId is required"})
	}

	pl := model.PriceList{
		CustomerID:    req.CustomerID,
		ProductTypeID: req.ProductTypeID,
		SubCategoryID: req.SubCategoryID,
		PricePerSqm:   req.PricePerSqm,
	}
	if err := h.priceListRepo.Create(&pl); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(pl)
}

// UpdatePriceList handles PUT /api/price-lists/:id
func (h *PriceListHandler) UpdatePriceList(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid price list ID"})
	}

	var req struct {
		PricePerSqm float64 `json:"pricePerSqm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	pl, err := h.priceListRepo.UpdatePrice(id, req.PricePerSqm)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pl)
}

// DeletePriceList handles DELETE /api/price-lists/:id
func (h *PriceListHandler) DeletePriceList(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid price list ID"})
	}

	if err := h.priceListRepo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}
