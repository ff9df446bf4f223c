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

type GetProfileExecutor interface {
	Execute(ctx context.Context, query usecases.GetProfileQuery) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserDTO, error)
}

type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=150"`
	LastName   *string `json:"last_name" binding:"omitempty,max=150"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Department *string `json:"department" binding:"omitempty,max=100"`
}

type ProfileHandler struct {
	getProfile    GetProfileExecutor
	updateProfile UpdateProfileExecutor
	logger        logger.Interface
}

func NewProfileHandler(getProfile GetProfileExecutor, updateProfile UpdateProfileExecutor, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{getProfile: getProfile, updateProfile: updateProfile, logger: logger}
}

// GetProfile handles GET /api/profile and GET /api/profile/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var targetID uint
	if c.Param("id") != "" {
		id, err := utils.ParseIDParam(c, "id", "user")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		targetID = id
	}

	result, err := h.getProfile.Execute(c.Request.Context(), usecases.GetProfileQuery{Actor: actor, TargetID: targetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PATCH /api/profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req UpdateProfileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:     actor.ID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
}
