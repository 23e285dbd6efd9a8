package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"thisorthat/internal/models/db_models"
)

type DesignRepositoryInterface interface {
	// UpsertDesigns inserts or replaces designs together with their tags in
	// one transaction.
	UpsertDesigns(ctx context.Context, designs []db_models.Design) error
	ListDesigns(ctx context.Context) ([]db_models.Design, error)
	CountDesigns(ctx context.Context) (int64, error)
}

func NewDesignRepository(db *gorm.DB) DesignRepositoryInterface {
	return &DesignRepository{db: db}
}

type DesignRepository struct {
	db *gorm.DB
}

const upsertBatchSize = 200

func (r *DesignRepository) UpsertDesigns(ctx context.Context, designs []db_models.Design) error {
	if len(designs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(designs))
	var tags []db_models.DesignTag
	rows := make([]db_models.Design, 0, len(designs))
	for _, d := range designs {
		ids = append(ids, d.ID)
		tags = append(tags, d.Tags...)
		d.Tags = nil
		rows = append(rows, d)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "image", "category", "colors", "updated_at"}),
		}).CreateInBatches(&rows, upsertBatchSize).Error
		if err != nil {
			return err
		}

		if err := tx.Unscoped().Where("design_id IN ?", ids).Delete(&db_models.DesignTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.CreateInBatches(&tags, upsertBatchSize).Error
	})
}

func (r *DesignRepository) ListDesigns(ctx context.Context) ([]db_models.Design, error) {
	var designs []db_models.Design
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("category ASC, position ASC")
		}).
		Order("id ASC").
		Find(&designs).Error
	if err != nil {
		return nil, err
	}
	return designs, nil
}

func (r *DesignRepository) CountDesigns(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Design{}).Count(&count).Error
	return count, err
}
