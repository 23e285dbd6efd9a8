package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thisorthat/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.ResultFeedback) error
	// ListFeedback pages through a result's feedback, newest first.
	ListFeedback(ctx context.Context, resultID uuid.UUID, page, pageSize int) ([]db_models.ResultFeedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.ResultFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// created_at has one second resolution, so id breaks ties and keeps pages
// from overlapping.
func (r *FeedbackRepository) ListFeedback(ctx context.Context, resultID uuid.UUID, page, pageSize int) ([]db_models.ResultFeedback, error) {
	items := []db_models.ResultFeedback{}
	err := r.db.WithContext(ctx).
		Where("result_id = ?", resultID).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, err
}
