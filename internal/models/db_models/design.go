package db_models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Design is keyed by the dataset id, so it does not embed BaseModel.
type Design struct {
	ID        string         `gorm:"type:varchar(128);primaryKey"`
	Name      string         `gorm:"type:varchar(200)"`
	Image     string         `gorm:"type:text"`
	Category  string         `gorm:"type:varchar(100);index"`
	Colors    pq.StringArray `gorm:"type:text[]"`
	Tags      []DesignTag    `gorm:"foreignKey:DesignID;constraint:OnDelete:CASCADE"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}

func (d *Design) BeforeCreate(tx *gorm.DB) error {
	d.CreatedAt = unixNow()
	d.UpdatedAt = d.CreatedAt
	return nil
}
