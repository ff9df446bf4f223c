package models

import "time"

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint      `gorm:"primarykey"`
	Username     string    `gorm:"uniqueIndex;not null;size:150"`
	Email        string    `gorm:"uniqueIndex;not null;size:254"`
	PasswordHash string    `gorm:"size:255"`
	Role         string    `gorm:"not null;size:20;index"`
	IsActive     bool      `gorm:"not null;default:false;index"`
	FullName     string    `gorm:"size:150"`
	FirstName    string    `gorm:"size:150"`
	LastName     string    `gorm:"size:150"`
	Phone        string    `gorm:"size:20"`
	Department   string    `gorm:"size:100"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
