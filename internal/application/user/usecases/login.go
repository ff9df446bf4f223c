package usecases

import (
	"context"
	"time"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const invalidCredentials = "invalid username or password"

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User        *dto.UserDTO
	AccessToken string
	ExpiresAt   time.Time
	SessionID   string
}

type LoginUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Execute checks the password before the active flag so that the
// verification state of an account is only revealed to its owner.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(invalidCredentials)
		}
		return nil, internalOrAppError(uc.logger, "failed to get user", err, "username", cmd.Username)
	}

	if !existingUser.VerifyPassword(cmd.Password, uc.passwordHasher) {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	if !existingUser.IsActive() {
		return nil, errors.NewForbiddenError("email not verified", "check your inbox or request a new verification email")
	}

	session, err := user.NewSession(existingUser.ID(), cmd.IPAddress, cmd.UserAgent, uc.tokens.AccessTTL())
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to create session", err, "user_id", existingUser.ID())
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, internalOrAppError(uc.logger, "failed to create session", err, "user_id", existingUser.ID())
	}

	token, expiresAt, err := uc.tokens.Generate(existingUser.ID(), session.ID, existingUser.Role())
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to issue access token", err, "user_id", existingUser.ID())
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "session_id", session.ID)

	return &LoginResult{
		User:        dto.ToUserDTO(existingUser),
		AccessToken: token,
		ExpiresAt:   expiresAt,
		SessionID:   session.ID,
	}, nil
}
