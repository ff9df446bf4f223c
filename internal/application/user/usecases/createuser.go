package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// CreateUserCommand provisions an account from the command line. Unlike
// self-registration it may pick any role and skip email verification.
type CreateUserCommand struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Department string
	Role       string
	Active     bool
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	txMgr          common.TransactionManager
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	role := vo.RoleEmployee
	if cmd.Role != "" {
		r, err := vo.NewRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError("invalid role", err.Error())
		}
		role = r
	}

	newUser, err := newAccount(cmd.Username, cmd.Email, cmd.Password, cmd.FullName, role, uc.passwordHasher)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to build account", err)
	}
	if err := applyProfile(newUser, user.ProfileChanges{Department: &cmd.Department}); err != nil {
		return nil, err
	}
	newUser.SetActive(cmd.Active)

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ensureUsernameFree(txCtx, uc.userRepo, newUser.Username()); err != nil {
			return err
		}
		if err := ensureEmailFree(txCtx, uc.userRepo, newUser.Email()); err != nil {
			return err
		}
		return uc.userRepo.Create(txCtx, newUser)
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to create user", err, "username", cmd.Username)
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "role", role, "active", cmd.Active)
	return dto.ToUserDTO(newUser), nil
}
