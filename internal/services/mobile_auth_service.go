package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/essgate/internal/logging"
)

type LoginInput struct {
	Identifier  string
	AppPassword string
	DeviceID    string
	DeviceModel string
	DeviceBrand string
}

type MobileAuthDependencies struct {
	Store    Store
	Box      SecretBox
	Sessions SessionTokens
	Reporter *ErrorReporter
	Logger   logging.Logger
	Now      func() time.Time
}

// MobileAuthService implements the device-bound mobile login and the app
// password operations. Every method returns a Result and never an error.
type MobileAuthService struct {
	store    Store
	sessions SessionTokens
	verifier *PasswordVerifier
	binder   *DeviceBinder
	issuer   *CredentialIssuer
	reporter *ErrorReporter
	logger   logging.Logger
}

func NewMobileAuthService(deps MobileAuthDependencies) *MobileAuthService {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	reporter := deps.Reporter
	if reporter == nil {
		reporter = NewErrorReporter(deps.Store.ErrorLogs(), logger)
	}
	return &MobileAuthService{
		store:    deps.Store,
		sessions: deps.Sessions,
		verifier: NewPasswordVerifier(deps.Box),
		binder:   NewDeviceBinder(deps.Now),
		issuer:   NewCredentialIssuer(deps.Box),
		reporter: reporter,
		logger:   logger.With("component", "mobile_auth"),
	}
}

func (service *MobileAuthService) Login(ctx context.Context, input LoginInput) Result {
	if strings.TrimSpace(input.DeviceID) == "" {
		return failed(MsgInvalidInput)
	}

	resolver := NewIdentifierResolver(service.store.Accounts(), service.store.Employees())
	identity, err := resolver.Resolve(ctx, input.Identifier)
	if err != nil {
		return service.fail(ctx, "Mobile App Login Error", MsgLoginFailed, err)
	}
	service.logger.Debug(ctx, "identifier resolved", "user", identity.Username, "method", string(identity.Method))

	employee, err := lookupEmployeeByAccount(ctx, service.store.Employees(), identity.Username)
	if err != nil {
		return service.fail(ctx, "Mobile App Login Error", MsgLoginFailed, err)
	}
	if !employee.AllowESS {
		return failed(MsgSelfServiceDisabled)
	}
	if err := service.verifier.Verify(employee, input.AppPassword); err != nil {
		return service.fail(ctx, "Mobile App Login Error", MsgLoginFailed, err)
	}

	var (
		outcome      DeviceOutcome
		sessionToken string
		credentials  Credentials
	)
	err = service.store.WithinTransaction(ctx, func(tx Store) error {
		var err error
		outcome, err = service.binder.Apply(ctx, tx.Employees(), employee, DeviceInfo{
			ID:    input.DeviceID,
			Model: strings.TrimSpace(input.DeviceModel),
			Brand: strings.TrimSpace(input.DeviceBrand),
		})
		if err != nil {
			return err
		}

		account, err := tx.Accounts().FindByUsername(ctx, identity.Username)
		if err != nil {
			return fmt.Errorf("load account %s: %w", identity.Username, err)
		}
		sessionToken, err = service.sessions.Issue(account.Username, account.Role)
		if err != nil {
			return fmt.Errorf("issue session for %s: %w", account.Username, err)
		}
		credentials, err = service.issuer.Issue(ctx, tx.Accounts(), account)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrDeviceMismatch) {
			service.logger.Warn(ctx, "device mismatch", "employee_id", employee.ID)
		}
		return service.fail(ctx, "Mobile App Login Error", MsgLoginFailed, err)
	}
	service.logger.Info(ctx, "mobile login", "employee_id", employee.ID, "device", string(outcome))

	result := succeeded(MsgLoginSuccessful)
	result.SessionToken = sessionToken
	result.Data = &LoginData{
		EmployeeID:           employee.ID,
		EmployeeName:         employee.EmployeeName,
		User:                 identity.Username,
		APIKey:               credentials.APIKey,
		APISecret:            credentials.APISecret,
		DeviceID:             input.DeviceID,
		RequirePasswordReset: employee.RequirePasswordReset,
	}
	if employee.AppID != nil {
		result.Data.AppID = *employee.AppID
	}
	return result
}

// ResetDeviceID unbinds the employee's device so the next login registers a
// new one. Requires write permission on employees.
func (service *MobileAuthService) ResetDeviceID(ctx context.Context, session SessionContext, employeeID string) Result {
	if !session.CanWriteEmployees() {
		return failed(MsgPermissionDenied)
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return failed(MsgInvalidInput)
	}

	if err := service.binder.Reset(ctx, service.store.Employees(), employeeID); err != nil {
		return service.fail(ctx, "Reset Device ID Error", MsgInternal, err)
	}
	service.logger.Info(ctx, "device reset", "employee_id", employeeID, "by", session.Username)
	return succeeded(MsgDeviceReset)
}

func (service *MobileAuthService) ChangeAppPassword(ctx context.Context, session SessionContext, oldPassword string, newPassword string) Result {
	if !session.IsAuthenticated() {
		return failed(MsgPermissionDenied)
	}

	employee, err := lookupEmployeeByAccount(ctx, service.store.Employees(), session.Username)
	if err != nil {
		return service.fail(ctx, "Change App Password Error", MsgInternal, err)
	}
	if strings.TrimSpace(newPassword) == "" {
		return failed(MsgInvalidInput)
	}
	if err := service.verifier.Verify(employee, oldPassword); err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrPasswordNotSet) {
			return failed(MsgCurrentPasswordIncorrect)
		}
		return service.fail(ctx, "Change App Password Error", MsgInternal, err)
	}

	if err := service.storeAppPassword(ctx, employee.ID, newPassword, false); err != nil {
		return service.fail(ctx, "Change App Password Error", MsgInternal, err)
	}
	return succeeded(MsgPasswordChanged)
}

// ResetAppPassword replaces the app password without the old one. Only
// allowed while the employee is flagged to reset it.
func (service *MobileAuthService) ResetAppPassword(ctx context.Context, session SessionContext, newPassword string) Result {
	if !session.IsAuthenticated() {
		return failed(MsgPermissionDenied)
	}

	employee, err := lookupEmployeeByAccount(ctx, service.store.Employees(), session.Username)
	if err != nil {
		return service.fail(ctx, "Reset App Password Error", MsgInternal, err)
	}
	if !employee.RequirePasswordReset {
		return failed(MsgPermissionDenied)
	}
	if strings.TrimSpace(newPassword) == "" {
		return failed(MsgInvalidInput)
	}

	if err := service.storeAppPassword(ctx, employee.ID, newPassword, false); err != nil {
		return service.fail(ctx, "Reset App Password Error", MsgInternal, err)
	}
	return succeeded(MsgPasswordReset)
}

// SetAppPassword assigns an app password on behalf of the employee.
func (service *MobileAuthService) SetAppPassword(ctx context.Context, session SessionContext, employeeID string, newPassword string, requireReset bool) Result {
	if !session.CanWriteEmployees() {
		return failed(MsgPermissionDenied)
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || strings.TrimSpace(newPassword) == "" {
		return failed(MsgInvalidInput)
	}

	employee, err := lookupEmployeeByID(ctx, service.store.Employees(), employeeID)
	if err != nil {
		return service.fail(ctx, "Set App Password Error", MsgInternal, err)
	}
	if err := service.storeAppPassword(ctx, employee.ID, newPassword, requireReset); err != nil {
		return service.fail(ctx, "Set App Password Error", MsgInternal, err)
	}
	service.logger.Info(ctx, "app password set", "employee_id", employee.ID, "by", session.Username, "require_reset", requireReset)
	return succeeded(MsgPasswordSet)
}

func (service *MobileAuthService) storeAppPassword(ctx context.Context, employeeID string, plaintext string, requireReset bool) error {
	sealed, err := service.verifier.seal(plaintext)
	if err != nil {
		return err
	}
	return service.store.Employees().UpdateAppPassword(ctx, employeeID, sealed, requireReset)
}

// fail turns err into a Result. Errors outside the business taxonomy are
// reported and surface as internalKey.
func (service *MobileAuthService) fail(ctx context.Context, title string, internalKey string, err error) Result {
	if key, ok := messageKeyFor(err); ok {
		return failed(key)
	}
	service.reporter.Report(ctx, title, err)
	return failed(internalKey)
}
