package models

import "time"

type TicketModel struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:20;not null;index"`
	Priority    string     `gorm:"size:20;not null;index"`
	CreatorID   uint       `gorm:"not null;index"`
	AssigneeID  *uint      `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`
	ResolvedAt  *time.Time
	ClosedAt    *time.Time

	// Foreign keys live in the SQL migrations; cascades are also applied
	// explicitly by the repositories so AutoMigrate schemas behave the same.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID              uint      `gorm:"primaryKey"`
	TicketID        uint      `gorm:"not null;index"`
	AuthorID        uint      `gorm:"not null;index"`
	Content         string    `gorm:"type:text;not null"`
	IsSystemMessage bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
