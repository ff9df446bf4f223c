package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type ListEmployeesQuery struct {
	Actor    access.Actor
	Search   string
	Role     string
	Active   *bool
	Page     int
	PageSize int
}

type ListEmployeesResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListEmployeesUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListEmployeesUseCase(userRepo user.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, query ListEmployeesQuery) (*ListEmployeesResult, error) {
	if !access.CanManageEmployees(query.Actor) {
		return nil, errors.NewForbiddenError("only HR and administrators can manage employees")
	}

	p := utils.NormalizePagination(query.Page, query.PageSize)
	filter := user.ListFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
		Search:   query.Search,
		Active:   query.Active,
	}
	if query.Role != "" {
		role, err := vo.NewRole(query.Role)
		if err != nil {
			return nil, errors.NewValidationError("invalid role filter", err.Error())
		}
		filter.Roles = []vo.Role{role}
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to list users", err)
	}

	return &ListEmployeesResult{
		Users:    dto.ToUserDTOList(users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
