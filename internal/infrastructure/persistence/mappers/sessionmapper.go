package mappers

import (
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

type SessionMapper interface {
	ToModel(session *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(session *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		IPAddress: model.IPAddress,
		UserAgent: model.UserAgent,
		ExpiresAt: model.ExpiresAt.UTC(),
		CreatedAt: model.CreatedAt.UTC(),
	}
}
