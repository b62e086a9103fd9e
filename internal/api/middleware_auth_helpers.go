package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/services"
)

var errMissingCredentials = errors.New("missing credentials")

// authenticateRequest accepts, in order, "Authorization: token key:secret",
// "Authorization: Bearer <jwt>" and the session cookie.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (services.SessionContext, error) {
	ctx := c.UserContext()

	if scheme, value, ok := parseAuthorizationHeader(c.Get(fiber.HeaderAuthorization)); ok {
		switch scheme {
		case "token":
			apiKey, apiSecret, found := strings.Cut(value, ":")
			if !found {
				return services.SessionContext{}, services.ErrInvalidCredentials
			}
			return handler.accounts.AuthenticateAPIToken(ctx, apiKey, apiSecret)
		case "bearer":
			return handler.accounts.AuthenticateSessionToken(ctx, value)
		default:
			return services.SessionContext{}, services.ErrInvalidCredentials
		}
	}

	rawToken := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawToken == "" {
		return services.SessionContext{}, errMissingCredentials
	}
	return handler.accounts.AuthenticateSessionToken(ctx, rawToken)
}

func parseAuthorizationHeader(raw string) (string, string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	scheme, value, found := strings.Cut(raw, " ")
	if !found {
		return strings.ToLower(scheme), "", true
	}
	return strings.ToLower(scheme), strings.TrimSpace(value), true
}
