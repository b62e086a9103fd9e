package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type IdentifierMethod string

const (
	IdentifiedByAppID    IdentifierMethod = "app_id"
	IdentifiedByUsername IdentifierMethod = "username"
	IdentifiedByEmail    IdentifierMethod = "email"
)

type ResolvedIdentity struct {
	Username string
	Method   IdentifierMethod
}

// IdentifierResolver maps a client-supplied identifier to one account, trying
// the employee app-id first, then username, then email. Matches are exact
// after trimming surrounding whitespace.
type IdentifierResolver struct {
	accounts  AccountRepository
	employees EmployeeRepository
}

func NewIdentifierResolver(accounts AccountRepository, employees EmployeeRepository) *IdentifierResolver {
	return &IdentifierResolver{accounts: accounts, employees: employees}
}

func (resolver *IdentifierResolver) Resolve(ctx context.Context, rawIdentifier string) (ResolvedIdentity, error) {
	identifier := strings.TrimSpace(rawIdentifier)
	if identifier == "" {
		return ResolvedIdentity{}, ErrInvalidInput
	}

	employee, err := resolver.employees.FindByAppID(ctx, identifier)
	switch {
	case err == nil:
		return ResolvedIdentity{Username: employee.AccountUsername, Method: IdentifiedByAppID}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ResolvedIdentity{}, fmt.Errorf("resolve identifier by app id: %w", err)
	}

	account, err := resolver.accounts.FindByUsername(ctx, identifier)
	switch {
	case err == nil:
		return ResolvedIdentity{Username: account.Username, Method: IdentifiedByUsername}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ResolvedIdentity{}, fmt.Errorf("resolve identifier by username: %w", err)
	}

	account, err = resolver.accounts.FindByEmail(ctx, identifier)
	switch {
	case err == nil:
		return ResolvedIdentity{Username: account.Username, Method: IdentifiedByEmail}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ResolvedIdentity{}, fmt.Errorf("resolve identifier by email: %w", err)
	}

	return ResolvedIdentity{}, ErrUnknownIdentifier
}
