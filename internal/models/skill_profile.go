package models

import "time"

// Skill level bounds for a declared profile.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

// SkillProfile associates a user with a skill at a proficiency level, either
// as a teacher or as a learner. A user may hold both a teacher and a learner
// profile for the same skill, but never two profiles of the same role; the
// composite unique index enforces this at the storage layer.
type SkillProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_profile_user_skill_role" json:"user_id"`
	SkillID   uint      `gorm:"not null;uniqueIndex:idx_profile_user_skill_role" json:"skill_id"`
	IsTeacher bool      `gorm:"not null;uniqueIndex:idx_profile_user_skill_role" json:"is_teacher"`
	Level     int       `gorm:"not null" json:"level"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM.
func (SkillProfile) TableName() string {
	return "skill_profiles"
}
