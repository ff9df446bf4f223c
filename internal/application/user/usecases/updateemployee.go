package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// UpdateEmployeeCommand is an edit made through employee management. Role
// and IsActive are privileged and require an administrator.
type UpdateEmployeeCommand struct {
	Actor      access.Actor
	TargetID   uint
	FullName   *string
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Department *string
	Role       *string
	IsActive   *bool
}

type UpdateEmployeeUseCase struct {
	userRepo user.Repository
	txMgr    common.TransactionManager
	logger   logger.Interface
}

func NewUpdateEmployeeUseCase(userRepo user.Repository, txMgr common.TransactionManager, logger logger.Interface) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{userRepo: userRepo, txMgr: txMgr, logger: logger}
}

func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update employee use case", "actor_id", cmd.Actor.ID, "target_id", cmd.TargetID)

	if !access.CanManageEmployees(cmd.Actor) {
		return nil, errors.NewForbiddenError("only HR and administrators can manage employees")
	}
	privileged := cmd.Role != nil || cmd.IsActive != nil
	if privileged && !access.CanEditPrivileged(cmd.Actor) {
		return nil, errors.NewForbiddenError("only administrators can change role or active status")
	}

	var updated *user.User
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		target, err := uc.userRepo.GetByIDForUpdate(txCtx, cmd.TargetID)
		if err != nil {
			return err
		}

		decision := access.CanEditTarget(cmd.Actor, access.Target{ID: target.ID(), Role: target.Role()})
		if !decision.Allowed {
			return errors.NewForbiddenError(decision.Reason)
		}

		if err := changeEmail(txCtx, uc.userRepo, target, cmd.Email); err != nil {
			return err
		}
		if err := applyProfile(target, user.ProfileChanges{
			FullName:   cmd.FullName,
			FirstName:  cmd.FirstName,
			LastName:   cmd.LastName,
			Phone:      cmd.Phone,
			Department: cmd.Department,
		}); err != nil {
			return err
		}
		if cmd.Role != nil {
			role, err := vo.NewRole(*cmd.Role)
			if err != nil {
				return errors.NewValidationError("invalid role", err.Error())
			}
			if err := target.ChangeRole(role); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.IsActive != nil {
			target.SetActive(*cmd.IsActive)
		}

		if err := uc.userRepo.Update(txCtx, target); err != nil {
			return err
		}
		updated = target
		return nil
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to update employee", err, "target_id", cmd.TargetID)
	}

	uc.logger.Infow("employee updated", "actor_id", cmd.Actor.ID, "target_id", cmd.TargetID, "privileged", privileged)
	return dto.ToUserDTO(updated), nil
}
