package db_models

import (
	"github.com/google/uuid"
)

type ResultFeedback struct {
	BaseModel
	ResultID uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment  string    `gorm:"type:text"`
	Rating   int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"` // Rating between 1 and 5
}
