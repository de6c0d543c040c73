package handler

import (
	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type WorkStatusHandler struct {
	workStatusRepo repository.WorkStatusRepository
}

func NewWorkStatusHandler(workStatusRepo repository.WorkStatusRepository) *WorkStatusHandler {
	return &WorkStatusHandler{workStatusRepo: workStatusRepo}
}

// GetWorkStatuses handles GET /api/work-statuses?productTypeId=&subCategoryId=
func (h *WorkStatusHandler) GetWorkStatuses(c *fiber.Ctx) error {
	productTypeID, err := parseUintQuery(c, "productTypeId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid productTypeId"})
	}
	subCategoryID, err := parseUintQuery(c, "subCategoryId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subCategoryId"})
	}

	statuses, err := h.workStatusRepo.Find(productTypeID, subCategoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(statuses)
}

// CreateWorkStatus handles POST /api/work-statuses. Posting for a scope that
// already has a vocabulary replaces the list.
func (h *WorkStatusHandler) CreateWorkStatus(c *fiber.Ctx) error {
	var req struct {
		ProductTypeID uint     `json:"productTypeId"`
		SubCategoryID *uint    `json:"subCategoryId"`
		StatusList    []string `json:"statusList"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductTypeID == 0 || len(req.StatusList) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "productTypeId and a non-empty statusList are required"})
	}

	ws := model.WorkStatus{
		ProductTypeID: req.ProductTypeID,
		SubCategoryID: req.SubCategoryID,
		StatusList:    model.StatusList(req.StatusList),
	}
	if err := h.workStatusRepo.Save(&ws); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(ws)
}
