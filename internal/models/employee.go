package models

import "time"

type Employee struct {
	ID                   string     `gorm:"column:id;primaryKey"`
	AccountUsername      string     `gorm:"column:account_username;uniqueIndex;not null"`
	EmployeeName         string     `gorm:"column:employee_name;not null;default:''"`
	AllowESS             bool       `gorm:"column:allow_ess;not null;default:false"`
	AppPassword          string     `gorm:"column:app_password;not null;default:''"`
	AppID                *string    `gorm:"column:app_id;uniqueIndex"`
	DeviceID             *string    `gorm:"column:device_id"`
	DeviceRegisteredOn   *time.Time `gorm:"column:device_registered_on"`
	DeviceModel          string     `gorm:"column:device_model;not null;default:''"`
	DeviceBrand          string     `gorm:"column:device_brand;not null;default:''"`
	RequirePasswordReset bool       `gorm:"column:require_password_reset;not null;default:false"`
	CreatedAt            time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;not null"`
}

func (Employee) TableName() string { return "employees" }

// HasBoundDevice reports whether a device id is registered. An empty string
// counts as unbound.
func (employee Employee) HasBoundDevice() bool {
	return employee.DeviceID != nil && *employee.DeviceID != ""
}

// DeviceBinding is what gets persisted on the first successful login.
type DeviceBinding struct {
	DeviceID     string
	Model        string
	Brand        string
	RegisteredAt time.Time
}
