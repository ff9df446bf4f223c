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

// UpdateProfileCommand carries self-service edits. Nil fields are unchanged.
type UpdateProfileCommand struct {
	UserID     uint
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Department *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	txMgr    common.TransactionManager
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, txMgr common.TransactionManager, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, txMgr: txMgr, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	var updated *user.User
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return err
		}

		if err := changeEmail(txCtx, uc.userRepo, u, cmd.Email); err != nil {
			return err
		}
		if err := applyProfile(u, user.ProfileChanges{
			FirstName:  cmd.FirstName,
			LastName:   cmd.LastName,
			Phone:      cmd.Phone,
			Department: cmd.Department,
		}); err != nil {
			return err
		}

		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to update profile", err, "user_id", cmd.UserID)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return dto.ToUserDTO(updated), nil
}

func changeEmail(ctx context.Context, repo user.Repository, u *user.User, email *string) error {
	if email == nil {
		return nil
	}
	addr, err := vo.NewEmail(*email)
	if err != nil {
		return errors.NewValidationError("invalid email", err.Error())
	}
	if err := ensureEmailFreeFor(ctx, repo, addr.String(), u.ID()); err != nil {
		return err
	}
	u.ChangeEmail(addr)
	return nil
}
