package handler

import (
	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the product taxonomy and the color surcharge table.
// Pure CRUD, so it talks to the repositories directly.
type CatalogHandler struct {
	productTypeRepo repository.ProductTypeRepository
	subCategoryRepo repository.SubCategoryRepository
	colorRepo       repository.ColorIncrementRepository
}

func NewCatalogHandler(
	productTypeRepo repository.ProductTypeRepository,
	subCategoryRepo repository.SubCategoryRepository,
	colorRepo repository.ColorIncrementRepository,
) *CatalogHandler {
	return &CatalogHandler{
		productTypeRepo: productTypeRepo,
		subCategoryRepo: subCategoryRepo,
		colorRepo:       colorRepo,
	}
}

// GetProductTypes handles GET /api/product-types
func (h *CatalogHandler) GetProductTypes(c *fiber.Ctx) error {
	types, err := h.productTypeRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types)
}

// CreateProductType handles POST /api/product-types
func (h *CatalogHandler) CreateProductType(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	pt := model.ProductType{Name: req.Name}
	if err := h.productTypeRepo.Create(&pt); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(pt)
}

// GetSubCategories handles GET /api/sub-categories?productTypeId=
func (h *CatalogHandler) GetSubCategories(c *fiber.Ctx) error {
	productTypeID, err := parseUintQuery(c, "productTypeId")
	if err != nil || productTypeID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "productTypeId query parameter is required"})
	}

	subs, err := h.subCategoryRepo.FindByProductType(*productTypeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}

// CreateSubCategory handles POST /api/sub-categories
func (h *CatalogHandler) CreateSubCategory(c *fiber.Ctx) error {
	var req struct {
		ProductTypeID uint   `json:"productTypeId"`
		Name          string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductTypeID == 0 || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "productTypeId and name are required"})
	}

	sc := model.SubCategory{ProductTypeID: req.ProductTypeID, Name: req.Name}
	if err := h.subCategoryRepo.Create(&sc); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(sc)
}

// GetColorIncrements handles GET /api/color-increments
func (h *CatalogHandler) GetColorIncrements(c *fiber.Ctx) error {
	colors, err := h.colorRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(colors)
}

// CreateColorIncrement handles POST /api/color-increments
func (h *CatalogHandler) CreateColorIncrement(c *fiber.Ctx) error {
	var req struct {
		Color            string  `json:"color"`
		PercentIncrement float64 `json:"percentIncrement"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Color == "" {
		return c.Status(400).JSON(fiber.Map{"error": "color is required"})
	}

	ci := model.ColorIncrement{Color: req.Color, PercentIncrement: req.PercentIncrement}
	if err := h.colorRepo.Create(&ci); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(ci)
}
