package db

import (
	"context"

	"github.com/terraincognita07/essgate/internal/models"
	"gorm.io/gorm"
)

var accountColumns = []string{
	"username", "email", "full_name", "role", "password_hash", "enabled", "api_key", "api_secret", "created_at", "updated_at",
}

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

func (repo *AccountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	if err := repo.database.WithContext(ctx).
		Select(accountColumns).
		Where("username = ?", username).
		First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.WithContext(ctx).
		Select(accountColumns).
		Where("email = ?", email).
		First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) FindByAPIKey(ctx context.Context, apiKey string) (models.Account, error) {
	var account models.Account
	if err := repo.database.WithContext(ctx).
		Select(accountColumns).
		Where("api_key = ?", apiKey).
		First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return repo.database.WithContext(ctx).Create(account).Error
}

// UpdateAPICredentials stores the API key and the sealed API secret.
func (repo *AccountRepository) UpdateAPICredentials(ctx context.Context, username string, apiKey string, sealedSecret string) error {
	result := repo.database.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"api_key":    apiKey,
			"api_secret": sealedSecret,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
