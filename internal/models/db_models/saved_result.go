package db_models

import "github.com/google/uuid"

// SavedResult stores a finished ResultsProfile as JSON.
type SavedResult struct {
	BaseModel
	SessionID       uuid.UUID        `gorm:"type:uuid;index"`
	Email           string           `gorm:"type:varchar(255)"`
	TotalSelections int              `gorm:"not null"`
	Profile         []byte           `gorm:"type:jsonb;not null"`
	Feedback        []ResultFeedback `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE"`
}
