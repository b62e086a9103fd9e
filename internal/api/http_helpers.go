package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

// respond writes a business result. Business outcomes, failures included,
// are always 200.
func (handler *Handler) respond(c *fiber.Ctx, result services.Result) error {
	return handler.respondStatus(c, fiber.StatusOK, result)
}

func (handler *Handler) respondStatus(c *fiber.Ctx, status int, result services.Result) error {
	result.Message = handler.localize(c, result)
	return c.Status(status).JSON(result)
}

func (handler *Handler) localize(c *fiber.Ctx, result services.Result) string {
	if result.MessageKey == "" {
		return result.Message
	}
	return handler.i18n.TranslateOr(handler.currentLanguage(c), result.MessageKey, result.Message)
}

func (handler *Handler) parseBody(c *fiber.Ctx, target any) bool {
	if err := c.BodyParser(target); err != nil {
		handler.logger.Debug(c.UserContext(), "request body rejected", "path", c.Path(), "error", err)
		return false
	}
	return true
}
