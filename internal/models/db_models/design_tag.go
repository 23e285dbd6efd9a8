package db_models

// DesignTag is one normalized tag of a design. Position keeps the order the
// tag had inside its category.
type DesignTag struct {
	BaseModel
	DesignID string `gorm:"type:varchar(128);not null;index;uniqueIndex:idx_design_tag"`
	Category string `gorm:"type:varchar(32);not null;index;uniqueIndex:idx_design_tag"`
	Value    string `gorm:"type:varchar(64);not null;uniqueIndex:idx_design_tag"`
	Position int    `gorm:"not null;default:0"`
}
