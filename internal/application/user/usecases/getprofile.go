package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	Actor    access.Actor
	TargetID uint
}

// GetProfileUseCase shows a profile to its owner and to employee managers.
type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	targetID := query.TargetID
	if targetID == 0 {
		targetID = query.Actor.ID
	}

	if targetID != query.Actor.ID && !access.CanManageEmployees(query.Actor) {
		return nil, errors.NewForbiddenError("you can only view your own profile")
	}

	u, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to get user", err, "user_id", targetID)
	}
	return dto.ToUserDTO(u), nil
}
