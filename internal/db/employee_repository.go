package db

import (
	"context"

	"github.com/terraincognita07/essgate/internal/models"
	"gorm.io/gorm"
)

var employeeColumns = []string{
	"id", "account_username", "employee_name", "allow_ess", "app_password", "app_id",
	"device_id", "device_registered_on", "device_model", "device_brand", "require_password_reset",
	"created_at", "updated_at",
}

type EmployeeRepository struct {
	database *gorm.DB
}

func NewEmployeeRepository(database *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{database: database}
}

func (repo *EmployeeRepository) FindByID(ctx context.Context, employeeID string) (models.Employee, error) {
	return repo.findOne(ctx, "id = ?", employeeID)
}

func (repo *EmployeeRepository) FindByAppID(ctx context.Context, appID string) (models.Employee, error) {
	return repo.findOne(ctx, "app_id = ?", appID)
}

func (repo *EmployeeRepository) FindByAccount(ctx context.Context, username string) (models.Employee, error) {
	return repo.findOne(ctx, "account_username = ?", username)
}

func (repo *EmployeeRepository) findOne(ctx context.Context, query string, value string) (models.Employee, error) {
	var employee models.Employee
	if err := repo.database.WithContext(ctx).
		Select(employeeColumns).
		Where(query, value).
		First(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (repo *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return repo.database.WithContext(ctx).Create(employee).Error
}

// BindDevice registers the device only while no device is bound. It reports
// false when another binding already exists.
func (repo *EmployeeRepository) BindDevice(ctx context.Context, employeeID string, binding models.DeviceBinding) (bool, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ? AND (device_id IS NULL OR device_id = '')", employeeID).
		Updates(map[string]any{
			"device_id":            binding.DeviceID,
			"device_registered_on": binding.RegisteredAt,
			"device_model":         binding.Model,
			"device_brand":         binding.Brand,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ClearDevice unbinds the device. It reports false when the employee does
// not exist.
func (repo *EmployeeRepository) ClearDevice(ctx context.Context, employeeID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"device_id":            nil,
			"device_registered_on": nil,
			"device_model":         "",
			"device_brand":         "",
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (repo *EmployeeRepository) UpdateAppPassword(ctx context.Context, employeeID string, sealedPassword string, requirePasswordReset bool) error {
	result := repo.database.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"app_password":           sealedPassword,
			"require_password_reset": requirePasswordReset,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
