package models

// Skill is a named capability users can teach or learn. Names are globally
// unique with case-sensitive exact matching; the description is set on first
// creation and never updated on conflict.
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;unique;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

// TableName specifies the table name for GORM.
func (Skill) TableName() string {
	return "skills"
}
