package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/terraincognita07/essgate/internal/models"
	"gorm.io/gorm"
)

func lookupEmployeeByAccount(ctx context.Context, employees EmployeeRepository, username string) (models.Employee, error) {
	employee, err := employees.FindByAccount(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, ErrNoEmployeeRecord
		}
		return models.Employee{}, fmt.Errorf("load employee for %s: %w", username, err)
	}
	return employee, nil
}

func lookupEmployeeByID(ctx context.Context, employees EmployeeRepository, employeeID string) (models.Employee, error) {
	employee, err := employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, ErrNoEmployeeRecord
		}
		return models.Employee{}, fmt.Errorf("load employee %s: %w", employeeID, err)
	}
	return employee, nil
}
