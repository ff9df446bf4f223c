package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150,username"`
	Email           string `json:"email" binding:"required,email,max=254"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
	Phone           string `json:"phone" binding:"max=20"`
	Department      string `json:"department" binding:"max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	User      *dto.UserDTO `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type AuthHandler struct {
	register     RegisterExecutor
	login        LoginExecutor
	logout       LogoutExecutor
	verifier     EmailVerifier
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	register RegisterExecutor,
	login LoginExecutor,
	logout LogoutExecutor,
	verifier EmailVerifier,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		logout:       logout,
		verifier:     verifier,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// Register handles POST /api/auth/register. When only the mail dispatch
// fails the account exists, so the 502 body still carries it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.register.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Department:      req.Department,
	})
	if err != nil {
		if errors.IsMailDispatchError(err) && result != nil {
			h.logger.Warnw("registered but verification mail failed", "user_id", result.ID, "error", err)
			utils.ErrorResponseWithData(c, err, result)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "registration successful, check your email to verify your account")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		User:      result.User,
		Token:     result.AccessToken,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	if err := h.logout.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: principal.SessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAccessTokenCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

// VerifyEmail handles GET /api/auth/verify-email/:token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	u, err := h.verifier.Consume(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified, you can now log in", dto.ToUserDTO(u))
}

// ResendVerification handles POST /api/auth/resend-verification.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.verifier.Resend(c.Request.Context(), req.Email)
	if err != nil {
		if errors.IsMailDispatchError(err) && u != nil {
			utils.ErrorResponseWithData(c, err, dto.ToUserDTO(u))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "verification email sent", dto.ToUserDTO(u))
}
