package db

import (
	"context"

	"github.com/terraincognita07/essgate/internal/models"
	"gorm.io/gorm"
)

type ErrorLogRepository struct {
	database *gorm.DB
}

func NewErrorLogRepository(database *gorm.DB) *ErrorLogRepository {
	return &ErrorLogRepository{database: database}
}

func (repo *ErrorLogRepository) Create(ctx context.Context, entry *models.ErrorLog) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *ErrorLogRepository) ListRecent(ctx context.Context, limit int) ([]models.ErrorLog, error) {
	if limit <= 0 {
		limit = 50
	}
	entries := make([]models.ErrorLog, 0, limit)
	if err := repo.database.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
