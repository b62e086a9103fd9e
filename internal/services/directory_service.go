package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateAccountInput struct {
	Username string
	Email    string
	FullName string
	Role     string
	// Password enables console login. Mobile-only accounts leave it empty.
	Password string
}

type CreateEmployeeInput struct {
	ID              string
	AccountUsername string
	EmployeeName    string
	AllowESS        bool
	AppID           string
	AppPassword     string
}

// DirectoryService provisions accounts and their employee records.
type DirectoryService struct {
	store Store
	box   SecretBox
}

func NewDirectoryService(store Store, box SecretBox) *DirectoryService {
	return &DirectoryService{store: store, box: box}
}

func (service *DirectoryService) CreateAccount(ctx context.Context, input CreateAccountInput) (models.Account, error) {
	username := strings.TrimSpace(input.Username)
	if err := ValidateUsername(username); err != nil {
		return models.Account{}, fmt.Errorf("%w: username %q", err, input.Username)
	}
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.Account{}, fmt.Errorf("%w: email %q", ErrInvalidInput, input.Email)
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleEmployee
	}
	if err := ValidateRole(role); err != nil {
		return models.Account{}, fmt.Errorf("%w: role %q", err, input.Role)
	}

	passwordHash := ""
	if input.Password != "" {
		if err := ValidatePasswordStrength(input.Password); err != nil {
			return models.Account{}, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Account{}, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hash)
	}

	account := models.Account{
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         role,
		PasswordHash: passwordHash,
		Enabled:      true,
	}

	err := service.store.WithinTransaction(ctx, func(tx Store) error {
		_, lookupErr := tx.Accounts().FindByUsername(ctx, username)
		if err := ensureAbsent(lookupErr); err != nil {
			return fmt.Errorf("username %s: %w", username, err)
		}
		_, lookupErr = tx.Accounts().FindByEmail(ctx, email)
		if err := ensureAbsent(lookupErr); err != nil {
			return fmt.Errorf("email %s: %w", email, err)
		}
		return tx.Accounts().Create(ctx, &account)
	})
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (service *DirectoryService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (models.Employee, error) {
	employeeID := strings.TrimSpace(input.ID)
	if err := ValidateEmployeeID(employeeID); err != nil {
		return models.Employee{}, fmt.Errorf("%w: employee id %q", err, input.ID)
	}
	username := strings.TrimSpace(input.AccountUsername)
	if username == "" {
		return models.Employee{}, fmt.Errorf("%w: account is required", ErrInvalidInput)
	}

	sealedPassword, err := service.box.Seal(secrets.PurposeAppPassword, input.AppPassword)
	if err != nil {
		return models.Employee{}, fmt.Errorf("seal app password: %w", err)
	}

	employee := models.Employee{
		ID:              employeeID,
		AccountUsername: username,
		EmployeeName:    strings.TrimSpace(input.EmployeeName),
		AllowESS:        input.AllowESS,
		AppPassword:     sealedPassword,
	}
	if appID := strings.TrimSpace(input.AppID); appID != "" {
		employee.AppID = &appID
	}

	err = service.store.WithinTransaction(ctx, func(tx Store) error {
		if _, err := tx.Accounts().FindByUsername(ctx, username); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: account %s", ErrUnknownIdentifier, username)
			}
			return fmt.Errorf("load account %s: %w", username, err)
		}
		_, lookupErr := tx.Employees().FindByID(ctx, employeeID)
		if err := ensureAbsent(lookupErr); err != nil {
			return fmt.Errorf("employee %s: %w", employeeID, err)
		}
		_, lookupErr = tx.Employees().FindByAccount(ctx, username)
		if err := ensureAbsent(lookupErr); err != nil {
			return fmt.Errorf("employee for account %s: %w", username, err)
		}
		if employee.AppID != nil {
			_, lookupErr = tx.Employees().FindByAppID(ctx, *employee.AppID)
			if err := ensureAbsent(lookupErr); err != nil {
				return fmt.Errorf("app id %s: %w", *employee.AppID, err)
			}
		}
		return tx.Employees().Create(ctx, &employee)
	})
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// ensureAbsent maps a lookup error: a found record becomes ErrAlreadyExists
// and record-not-found becomes nil.
func ensureAbsent(err error) error {
	switch {
	case err == nil:
		return ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
