package handlers

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/user"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

// EmailVerifier consumes verification links and re-sends them.
type EmailVerifier interface {
	Consume(ctx context.Context, raw string) (*user.User, error)
	Resend(ctx context.Context, email string) (*user.User, error)
}
