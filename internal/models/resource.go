package models

import "time"

// Resource is a skill-tagged learning resource shared by a user. Resources
// are immutable once created; duplicate titles are allowed.
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	URL         string    `gorm:"size:200" json:"url"`
	SkillID     uint      `gorm:"not null;index" json:"skill_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM.
func (Resource) TableName() string {
	return "resources"
}
