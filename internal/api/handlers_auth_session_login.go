package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

func (handler *Handler) ConsoleLogin(c *fiber.Ctx) error {
	input := consoleLoginInput{}
	if !handler.parseBody(c, &input) {
		return handler.respond(c, services.Failure(services.MsgInvalidInput))
	}

	result := handler.accounts.ConsoleLogin(c.UserContext(), input.Identifier, input.Password)
	if result.Success {
		handler.setSessionCookie(c, result.SessionToken)
	}
	return handler.respond(c, result)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return handler.respond(c, services.Result{
		Success:    true,
		Message:    services.EnglishMessage(services.MsgLoggedOut),
		MessageKey: services.MsgLoggedOut,
	})
}
