package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

// MobileLogin is the guest login used by the mobile app. On success the
// session cookie is set as well as returned API credentials.
func (handler *Handler) MobileLogin(c *fiber.Ctx) error {
	input := mobileLoginInput{}
	if !handler.parseBody(c, &input) {
		return handler.respond(c, services.Failure(services.MsgInvalidInput))
	}

	result := handler.mobile.Login(c.UserContext(), services.LoginInput{
		Identifier:  input.Identifier,
		AppPassword: input.AppPassword,
		DeviceID:    input.DeviceID,
		DeviceModel: input.DeviceModel,
		DeviceBrand: input.DeviceBrand,
	})
	if result.Success && result.SessionToken != "" {
		handler.setSessionCookie(c, result.SessionToken)
	}
	return handler.respond(c, result)
}

func (handler *Handler) ChangeAppPassword(c *fiber.Ctx) error {
	session, _ := currentSession(c)
	input := changeAppPasswordInput{}
	if !handler.parseBody(c, &input) {
		return handler.respond(c, services.Failure(services.MsgInvalidInput))
	}
	return handler.respond(c, handler.mobile.ChangeAppPassword(c.UserContext(), session, input.OldAppPassword, input.NewAppPassword))
}

func (handler *Handler) ResetAppPassword(c *fiber.Ctx) error {
	session, _ := currentSession(c)
	input := resetAppPasswordInput{}
	if !handler.parseBody(c, &input) {
		return handler.respond(c, services.Failure(services.MsgInvalidInput))
	}
	return handler.respond(c, handler.mobile.ResetAppPassword(c.UserContext(), session, input.NewPassword))
}
