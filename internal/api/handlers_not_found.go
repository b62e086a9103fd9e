package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return handler.respondStatus(c, fiber.StatusNotFound, services.Failure("errors.not_found"))
}
