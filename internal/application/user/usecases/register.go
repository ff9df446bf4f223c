package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/verification"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	Phone           string
	Department      string
}

// RegisterUseCase creates an inactive employee account and mails its
// verification link. Self-registration never grants another role.
type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	verifier       VerificationIssuer
	txMgr          common.TransactionManager
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	verifier VerificationIssuer,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		verifier:       verifier,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute returns the created account even when the mail could not be
// sent; the error is then a MailDispatchError and the account is committed.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	if cmd.Password != cmd.PasswordConfirm {
		return nil, errors.NewValidationError("passwords do not match")
	}

	newUser, err := newAccount(cmd.Username, cmd.Email, cmd.Password, "", vo.RoleEmployee, uc.passwordHasher)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to build account", err)
	}
	if err := applyProfile(newUser, user.ProfileChanges{
		FirstName:  &cmd.FirstName,
		LastName:   &cmd.LastName,
		Phone:      &cmd.Phone,
		Department: &cmd.Department,
	}); err != nil {
		return nil, err
	}

	var token *verification.Token
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ensureUsernameFree(txCtx, uc.userRepo, newUser.Username()); err != nil {
			return err
		}
		if err := ensureEmailFree(txCtx, uc.userRepo, newUser.Email()); err != nil {
			return err
		}
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}

		token, err = uc.verifier.Issue(txCtx, newUser.ID())
		return err
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to register user", err, "username", cmd.Username)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	result := dto.ToUserDTO(newUser)
	if err := uc.verifier.SendVerification(ctx, newUser, token); err != nil {
		return result, err
	}
	return result, nil
}
