package models

import "time"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID        string    `gorm:"primarykey;size:26"`
	UserID    uint      `gorm:"not null;index"`
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:512"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "user_sessions"
}
