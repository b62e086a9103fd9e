package db

import (
	"context"

	"github.com/terraincognita07/essgate/internal/services"
	"gorm.io/gorm"
)

// ServiceStore exposes Repositories through services.Store.
type ServiceStore struct {
	repos *Repositories
}

func NewServiceStore(database *gorm.DB) *ServiceStore {
	return &ServiceStore{repos: NewRepositories(database)}
}

func (store *ServiceStore) Accounts() services.AccountRepository {
	return store.repos.Accounts
}

func (store *ServiceStore) Employees() services.EmployeeRepository {
	return store.repos.Employees
}

func (store *ServiceStore) ErrorLogs() services.ErrorLogRepository {
	return store.repos.ErrorLogs
}

func (store *ServiceStore) WithinTransaction(ctx context.Context, fn func(tx services.Store) error) error {
	return store.repos.Transaction(ctx, func(tx *Repositories) error {
		return fn(&ServiceStore{repos: tx})
	})
}
