package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/essgate/internal/logging"
	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionContext identifies the caller of an authenticated operation.
type SessionContext struct {
	Username string
	Role     string
}

func (session SessionContext) IsAuthenticated() bool {
	return strings.TrimSpace(session.Username) != ""
}

func (session SessionContext) CanWriteEmployees() bool {
	return session.IsAuthenticated() && models.CanWriteEmployees(session.Role)
}

func newSessionContext(account models.Account) SessionContext {
	return SessionContext{Username: account.Username, Role: account.Role}
}

// AccountAuthService authenticates operator console logins and the session
// credentials presented on authenticated requests.
type AccountAuthService struct {
	accounts AccountRepository
	box      SecretBox
	sessions SessionTokens
	logger   logging.Logger
}

func NewAccountAuthService(accounts AccountRepository, box SecretBox, sessions SessionTokens, logger logging.Logger) *AccountAuthService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &AccountAuthService{
		accounts: accounts,
		box:      box,
		sessions: sessions,
		logger:   logger.With("component", "account_auth"),
	}
}

func (service *AccountAuthService) ConsoleLogin(ctx context.Context, identifier string, password string) Result {
	identifier, password, err := NormalizeCredentialsInput(identifier, password)
	if err != nil {
		return failed(MsgConsoleLoginFailed)
	}

	account, err := service.findConsoleAccount(ctx, identifier)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			service.logger.Error(ctx, "console login lookup failed", "error", err)
			return failed(MsgInternal)
		}
		return failed(MsgConsoleLoginFailed)
	}
	if !account.Enabled || account.PasswordHash == "" {
		return failed(MsgConsoleLoginFailed)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return failed(MsgConsoleLoginFailed)
	}

	token, err := service.sessions.Issue(account.Username, account.Role)
	if err != nil {
		service.logger.Error(ctx, "issue console session failed", "user", account.Username, "error", err)
		return failed(MsgInternal)
	}

	result := succeeded(MsgConsoleLoginSuccessful)
	result.SessionToken = token
	return result
}

func (service *AccountAuthService) findConsoleAccount(ctx context.Context, identifier string) (models.Account, error) {
	account, err := service.accounts.FindByUsername(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, fmt.Errorf("load account by username: %w", err)
	}

	account, err = service.accounts.FindByEmail(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, fmt.Errorf("load account by email: %w", err)
	}
	return models.Account{}, ErrInvalidCredentials
}

// AuthenticateSessionToken validates a signed session token and reloads the
// account so disabled or removed accounts lose access immediately.
func (service *AccountAuthService) AuthenticateSessionToken(ctx context.Context, rawToken string) (SessionContext, error) {
	claims, err := service.sessions.Parse(rawToken)
	if err != nil {
		return SessionContext{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return service.activeSession(ctx, claims.Username)
}

// AuthenticateAPIToken validates an "api_key:api_secret" pair issued at login.
func (service *AccountAuthService) AuthenticateAPIToken(ctx context.Context, apiKey string, apiSecret string) (SessionContext, error) {
	apiKey = strings.TrimSpace(apiKey)
	apiSecret = strings.TrimSpace(apiSecret)
	if apiKey == "" || apiSecret == "" {
		return SessionContext{}, ErrInvalidCredentials
	}

	account, err := service.accounts.FindByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionContext{}, ErrInvalidCredentials
		}
		return SessionContext{}, fmt.Errorf("load account by api key: %w", err)
	}

	stored, err := service.box.Open(secrets.PurposeAPISecret, account.APISecret)
	if err != nil {
		return SessionContext{}, fmt.Errorf("open api secret for %s: %w", account.Username, err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(apiSecret)) != 1 {
		return SessionContext{}, ErrInvalidCredentials
	}
	if !account.Enabled {
		return SessionContext{}, ErrInvalidCredentials
	}
	return newSessionContext(account), nil
}

func (service *AccountAuthService) activeSession(ctx context.Context, username string) (SessionContext, error) {
	account, err := service.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionContext{}, ErrInvalidCredentials
		}
		return SessionContext{}, fmt.Errorf("load session account: %w", err)
	}
	if !account.Enabled {
		return SessionContext{}, ErrInvalidCredentials
	}
	return newSessionContext(account), nil
}
