package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Principal is the caller resolved from an access token.
type Principal struct {
	Actor     access.Actor
	SessionID string
	User      *user.User
}

// AuthenticateUseCase resolves a bearer token to a live session and an
// active account. The role always comes from the database, never from the
// token, so role changes take effect on the next request.
type AuthenticateUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	tokens      TokenService
	logger      logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	tokens TokenService,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	userID, sessionID, err := uc.tokens.ParseAccessToken(token)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session has ended")
		}
		return nil, internalOrAppError(uc.logger, "failed to load session", err, "session_id", sessionID)
	}
	if session.UserID != userID || session.IsExpired() {
		return nil, errors.NewUnauthorizedError("session has ended")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("account no longer exists")
		}
		return nil, internalOrAppError(uc.logger, "failed to load user", err, "user_id", userID)
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is not active")
	}

	return &Principal{
		Actor:     access.Actor{ID: u.ID(), Role: u.Role()},
		SessionID: session.ID,
		User:      u,
	}, nil
}
