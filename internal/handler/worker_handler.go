package handler

import (
	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"
	"go-fabshop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WorkerHandler struct {
	workerRepo  repository.WorkerRepository
	authService service.AuthService
}

func NewWorkerHandler(workerRepo repository.WorkerRepository, authService service.AuthService) *WorkerHandler {
	return &WorkerHandler{workerRepo: workerRepo, authService: authService}
}

// LoginRequest mirrors the scanner frontend's login form.
type LoginRequest struct {
	Username   string `json:"username"`
	AccessCode string `json:"access_code"`
}

// Login handles POST /api/worker-login
func (h *WorkerHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Username == "" || req.AccessCode == "" {
		return c.Status(400).JSON(fiber.Map{"error": "username and access_code are required"})
	}

	response, err := h.authService.Login(req.Username, req.AccessCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}

// ValidateToken handles POST /api/worker-login/validate
func (h *WorkerHandler) ValidateToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "token is required"})
	}

	worker, err := h.authService.ValidateToken(req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(worker)
}

// GetWorkers handles GET /api/workers
func (h *WorkerHandler) GetWorkers(c *fiber.Ctx) error {
	workers, err := h.workerRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.WorkerResponse, len(workers))
	for i, w := range workers {
		responses[i] = w.ToResponse()
	}
	return c.JSON(responses)
}

// CreateWorker handles POST /api/workers
func (h *WorkerHandler) CreateWorker(c *fiber.Ctx) error {
	var req struct {
		Username   string `json:"username"`
		AccessCode string `json:"access_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Username == "" || req.AccessCode == "" {
		return c.Status(400).JSON(fiber.Map{"error": "username and access_code are required"})
	}

	worker := model.Worker{Username: req.Username, AccessCode: req.AccessCode}
	if err := h.workerRepo.Create(&worker); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(worker.ToResponse())
}

// DeleteWorker handles DELETE /api/workers/:id
func (h *WorkerHandler) DeleteWorker(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid worker ID"})
	}

	if err := h.workerRepo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(204)
}
