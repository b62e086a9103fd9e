package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	session, err := handler.authenticateRequest(c)
	if err != nil {
		if !errors.Is(err, errMissingCredentials) && !errors.Is(err, services.ErrInvalidCredentials) {
			handler.logger.Error(c.UserContext(), "authenticate request failed", "path", c.Path(), "error", err)
		}
		return handler.respondStatus(c, fiber.StatusUnauthorized, services.Failure(services.MsgAuthenticationRequired))
	}

	c.Locals(contextSessionKey, session)
	return c.Next()
}
