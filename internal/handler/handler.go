package handler

import (
	"errors"
	"log"
	"strconv"

	"go-fabshop-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError translates the service error taxonomy into HTTP statuses:
// validation 400, credentials 401, not found 404, conflict 409, each with the
// sentinel's message. Anything unexpected is logged and answered with a
// generic 500 so internals never leak into responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// parseIDParam reads a numeric path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseUintQuery reads an optional numeric query parameter; nil when absent.
func parseUintQuery(c *fiber.Ctx, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}
