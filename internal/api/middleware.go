package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

const (
	sessionCookieName  = "essgate_session"
	languageCookieName = "essgate_lang"
	contextSessionKey  = "current_session"
	contextLanguageKey = "current_language"
)

func currentSession(c *fiber.Ctx) (services.SessionContext, bool) {
	session, ok := c.Locals(contextSessionKey).(services.SessionContext)
	return session, ok
}

func (handler *Handler) currentLanguage(c *fiber.Ctx) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
