package api

import (
	"context"
	"time"

	"github.com/terraincognita07/essgate/internal/i18n"
	"github.com/terraincognita07/essgate/internal/logging"
	"github.com/terraincognita07/essgate/internal/services"
)

// MobileAuth is the mobile login surface served under /api/mobile and
// /api/employees.
type MobileAuth interface {
	Login(ctx context.Context, input services.LoginInput) services.Result
	ResetDeviceID(ctx context.Context, session services.SessionContext, employeeID string) services.Result
	ChangeAppPassword(ctx context.Context, session services.SessionContext, oldPassword string, newPassword string) services.Result
	ResetAppPassword(ctx context.Context, session services.SessionContext, newPassword string) services.Result
	SetAppPassword(ctx context.Context, session services.SessionContext, employeeID string, newPassword string, requireReset bool) services.Result
}

// SessionAuthenticator turns request credentials into a session context.
type SessionAuthenticator interface {
	ConsoleLogin(ctx context.Context, identifier string, password string) services.Result
	AuthenticateSessionToken(ctx context.Context, rawToken string) (services.SessionContext, error)
	AuthenticateAPIToken(ctx context.Context, apiKey string, apiSecret string) (services.SessionContext, error)
}

type Dependencies struct {
	Mobile       MobileAuth
	Accounts     SessionAuthenticator
	I18n         *i18n.Manager
	Logger       logging.Logger
	CookieSecure bool
	SessionTTL   time.Duration
}

type Handler struct {
	mobile       MobileAuth
	accounts     SessionAuthenticator
	i18n         *i18n.Manager
	logger       logging.Logger
	cookieSecure bool
	sessionTTL   time.Duration
}
