package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor    access.Actor
	TargetID uint
}

// DeleteUserUseCase removes an account together with the tickets it
// created, its comments, sessions and pending verification.
type DeleteUserUseCase struct {
	userRepo user.Repository
	txMgr    common.TransactionManager
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, txMgr common.TransactionManager, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, txMgr: txMgr, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "actor_id", cmd.Actor.ID, "target_id", cmd.TargetID)

	if !access.CanManageEmployees(cmd.Actor) {
		return errors.NewForbiddenError("only HR and administrators can delete users")
	}

	var username string
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		target, err := uc.userRepo.GetByIDForUpdate(txCtx, cmd.TargetID)
		if err != nil {
			return err
		}

		decision := access.CanDeleteUser(cmd.Actor, access.Target{ID: target.ID(), Role: target.Role()})
		if !decision.Allowed {
			return errors.NewForbiddenError(decision.Reason)
		}

		username = target.Username()
		return uc.userRepo.Delete(txCtx, target.ID())
	})
	if err != nil {
		return internalOrAppError(uc.logger, "failed to delete user", err, "target_id", cmd.TargetID)
	}

	uc.logger.Infow("user deleted", "actor_id", cmd.Actor.ID, "target_id", cmd.TargetID, "username", username)
	return nil
}
