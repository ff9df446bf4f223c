package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type ListEmployeesExecutor interface {
	Execute(ctx context.Context, query usecases.ListEmployeesQuery) (*usecases.ListEmployeesResult, error)
}

type UpdateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateEmployeeCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) error
}

type ListEmployeesRequest struct {
	Search string `form:"search" binding:"omitempty,max=150"`
	Role   string `form:"role" binding:"omitempty,oneof=employee it_staff hr admin"`
	Active *bool  `form:"is_active"`
}

// UpdateEmployeeRequest is the employee management form. Role and
// is_active are accepted from administrators only.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,max=150"`
	FirstName  *string `json:"first_name" binding:"omitempty,max=150"`
	LastName   *string `json:"last_name" binding:"omitempty,max=150"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	Role       *string `json:"role" binding:"omitempty,oneof=employee it_staff hr admin"`
	IsActive   *bool   `json:"is_active"`
}

type EmployeeHandler struct {
	list       ListEmployeesExecutor
	getProfile GetProfileExecutor
	update     UpdateEmployeeExecutor
	delete     DeleteUserExecutor
	logger     logger.Interface
}

func NewEmployeeHandler(
	list ListEmployeesExecutor,
	getProfile GetProfileExecutor,
	update UpdateEmployeeExecutor,
	deleteUser DeleteUserExecutor,
	logger logger.Interface,
) *EmployeeHandler {
	return &EmployeeHandler{
		list:       list,
		getProfile: getProfile,
		update:     update,
		delete:     deleteUser,
		logger:     logger,
	}
}

// ListEmployees handles GET /api/employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req ListEmployeesRequest
	if err := utils.BindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), usecases.ListEmployeesQuery{
		Actor:    actor,
		Search:   req.Search,
		Role:     req.Role,
		Active:   req.Active,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// GetEmployee handles GET /api/employees/:id.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfile.Execute(c.Request.Context(), usecases.GetProfileQuery{Actor: actor, TargetID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateEmployee handles PATCH /api/employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.update.Execute(c.Request.Context(), usecases.UpdateEmployeeCommand{
		Actor:      actor,
		TargetID:   id,
		FullName:   req.FullName,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Role:       req.Role,
		IsActive:   req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "employee updated successfully", result)
}

// DeleteEmployee handles DELETE /api/employees/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), usecases.DeleteUserCommand{Actor: actor, TargetID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted successfully", nil)
}
