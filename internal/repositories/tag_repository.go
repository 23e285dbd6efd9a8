package repositories

import (
	"context"

	"gorm.io/gorm"

	"thisorthat/internal/models/db_models"
)

// TagUsage is one entry of the tag vocabulary.
type TagUsage struct {
	Category string
	Value    string
	Designs  int
}

type TagRepositoryInterface interface {
	// TagVocabulary lists distinct tags with the number of designs carrying
	// them, most used first. An empty category returns all categories.
	TagVocabulary(ctx context.Context, category string) ([]TagUsage, error)
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: db}
}

type TagRepository struct {
	db *gorm.DB
}

func (t TagRepository) TagVocabulary(ctx context.Context, category string) ([]TagUsage, error) {
	var usage []TagUsage
	q := t.db.WithContext(ctx).
		Model(&db_models.DesignTag{}).
		Select("category, value, COUNT(DISTINCT design_id) AS designs").
		Group("category, value").
		Order("category ASC, designs DESC, value ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Scan(&usage).Error; err != nil {
		return nil, err
	}
	return usage, nil
}
