package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

func (handler *Handler) ResetDeviceID(c *fiber.Ctx) error {
	session, _ := currentSession(c)
	return handler.respond(c, handler.mobile.ResetDeviceID(c.UserContext(), session, c.Params("id")))
}

func (handler *Handler) SetAppPassword(c *fiber.Ctx) error {
	session, _ := currentSession(c)
	input := setAppPasswordInput{}
	if !handler.parseBody(c, &input) {
		return handler.respond(c, services.Failure(services.MsgInvalidInput))
	}
	return handler.respond(c, handler.mobile.SetAppPassword(c.UserContext(), session, c.Params("id"), input.NewPassword, input.RequirePasswordReset))
}
