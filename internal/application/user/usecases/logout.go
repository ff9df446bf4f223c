package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, logger: logger}
}

// Execute deletes the session; every token naming it stops working.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewValidationError("session ID is required")
	}
	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		return internalOrAppError(uc.logger, "failed to delete session", err, "session_id", cmd.SessionID)
	}
	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)
	return nil
}
