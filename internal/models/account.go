package models

import "time"

const (
	RoleSystemManager = "system_manager"
	RoleHRManager     = "hr_manager"
	RoleEmployee      = "employee"
)

type Account struct {
	Username     string    `gorm:"column:username;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name;not null;default:''"`
	Role         string    `gorm:"column:role;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null;default:''"`
	Enabled      bool      `gorm:"column:enabled;not null"`
	APIKey       *string   `gorm:"column:api_key;uniqueIndex"`
	APISecret    string    `gorm:"column:api_secret;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

func (Account) TableName() string { return "accounts" }

func IsKnownRole(role string) bool {
	switch role {
	case RoleSystemManager, RoleHRManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// CanWriteEmployees reports whether the role holds write permission on
// employee records.
func CanWriteEmployees(role string) bool {
	return role == RoleSystemManager || role == RoleHRManager
}
