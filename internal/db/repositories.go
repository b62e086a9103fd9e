package db

import (
	"context"

	"gorm.io/gorm"
)

type Repositories struct {
	database  *gorm.DB
	Accounts  *AccountRepository
	Employees *EmployeeRepository
	ErrorLogs *ErrorLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database:  database,
		Accounts:  NewAccountRepository(database),
		Employees: NewEmployeeRepository(database),
		ErrorLogs: NewErrorLogRepository(database),
	}
}

// Transaction runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (repos *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return repos.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
