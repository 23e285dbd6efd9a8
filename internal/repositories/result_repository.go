package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thisorthat/internal/models/db_models"
)

type ResultRepositoryInterface interface {
	CreateResult(ctx context.Context, result *db_models.SavedResult) error
	// GetResult returns nil, nil when no result has the id.
	GetResult(ctx context.Context, id uuid.UUID) (*db_models.SavedResult, error)
}

func NewResultRepository(db *gorm.DB) ResultRepositoryInterface {
	return &ResultRepository{db: db}
}

type ResultRepository struct {
	db *gorm.DB
}

func (r *ResultRepository) CreateResult(ctx context.Context, result *db_models.SavedResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *ResultRepository) GetResult(ctx context.Context, id uuid.UUID) (*db_models.SavedResult, error) {
	var result db_models.SavedResult
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
