// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultAvatar is assigned to users who have not uploaded an avatar.
const DefaultAvatar = "default.jpg"

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;unique;not null" json:"username"`
	Email     string    `gorm:"size:120;unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `gorm:"size:500" json:"bio"`
	Avatar    string    `gorm:"size:200;default:'default.jpg'" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
