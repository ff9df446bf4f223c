package models

import "time"

// EmailVerificationModel stores the single pending verification of a user.
// Only the SHA-256 of the token is kept.
type EmailVerificationModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (EmailVerificationModel) TableName() string {
	return "email_verifications"
}
