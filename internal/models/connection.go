package models

import "time"

// ConnectionStatus represents the status of a teaching connection request.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a request awaiting a response.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates the teacher accepted the request.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	// ConnectionStatusRejected indicates the request was declined or withdrawn.
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ConnectionMode determines which role the acting user takes when requesting
// a connection. The role assignment derives solely from the mode at request
// time, never from stored profile roles.
type ConnectionMode string

const (
	// ConnectionModeAsLearner makes the acting user the learner and the
	// target user the teacher.
	ConnectionModeAsLearner ConnectionMode = "as_learner"
	// ConnectionModeAsTeacher makes the acting user the teacher and the
	// target user the learner.
	ConnectionModeAsTeacher ConnectionMode = "as_teacher"
)

// Connection is a directed teach/learn relationship between two users scoped
// to one skill. At most one non-rejected connection may exist per
// (teacher, learner, skill) triple; a partial unique index created during
// migration enforces this against concurrent requests.
type Connection struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	TeacherID uint             `gorm:"not null;index" json:"teacher_id"`
	LearnerID uint             `gorm:"not null;index" json:"learner_id"`
	SkillID   uint             `gorm:"not null;index" json:"skill_id"`
	Status    ConnectionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Message   string           `gorm:"size:300" json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Relationships
	Teacher User  `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Learner User  `gorm:"foreignKey:LearnerID" json:"learner,omitempty"`
	Skill   Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM.
func (Connection) TableName() string {
	return "connections"
}

// IsTerminal reports whether the connection can no longer transition.
func (c *Connection) IsTerminal() bool {
	return c.Status != ConnectionStatusPending
}
