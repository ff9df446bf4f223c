package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/domain/verification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	sessionRepo      *repository.SessionRepository
	verificationRepo verification.Repository
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db),
		sessionRepo:      repository.NewSessionRepository(db),
		verificationRepo: repository.NewVerificationRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
	}
}
