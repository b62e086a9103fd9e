package api

import (
	"errors"

	"github.com/terraincognita07/essgate/internal/logging"
	"github.com/terraincognita07/essgate/internal/session"
)

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Mobile == nil {
		return nil, errors.New("mobile auth service is required")
	}
	if deps.Accounts == nil {
		return nil, errors.New("session authenticator is required")
	}
	if deps.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	sessionTTL := deps.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}

	return &Handler{
		mobile:       deps.Mobile,
		accounts:     deps.Accounts,
		i18n:         deps.I18n,
		logger:       logger.With("component", "http"),
		cookieSecure: deps.CookieSecure,
		sessionTTL:   sessionTTL,
	}, nil
}
