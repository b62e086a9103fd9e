package services

import (
	"context"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/session"
)

type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByAPIKey(ctx context.Context, apiKey string) (models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	UpdateAPICredentials(ctx context.Context, username string, apiKey string, sealedSecret string) error
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, employeeID string) (models.Employee, error)
	FindByAppID(ctx context.Context, appID string) (models.Employee, error)
	FindByAccount(ctx context.Context, username string) (models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	BindDevice(ctx context.Context, employeeID string, binding models.DeviceBinding) (bool, error)
	ClearDevice(ctx context.Context, employeeID string) (bool, error)
	UpdateAppPassword(ctx context.Context, employeeID string, sealedPassword string, requirePasswordReset bool) error
}

type ErrorLogRepository interface {
	Create(ctx context.Context, entry *models.ErrorLog) error
}

// Store vends repositories and runs work inside a single transaction. The
// Store handed to fn is bound to that transaction.
type Store interface {
	Accounts() AccountRepository
	Employees() EmployeeRepository
	ErrorLogs() ErrorLogRepository
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

// SecretBox seals values that must be recoverable later.
type SecretBox interface {
	Seal(purpose string, plaintext string) (string, error)
	Open(purpose string, sealed string) (string, error)
}

type SessionTokens interface {
	Issue(username string, role string) (string, error)
	Parse(rawToken string) (session.Claims, error)
}
