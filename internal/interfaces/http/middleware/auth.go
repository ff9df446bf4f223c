package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

const contextKeyPrincipal = "principal"

// Authenticator resolves an access token to a live principal.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*usecases.Principal, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// RequireAuth accepts the access token from the cookie or, failing that,
// from an "Authorization: Bearer" header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			return
		}

		principal, err := m.authenticator.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Debugw("authentication failed", "error", err, "path", c.Request.URL.Path)
			utils.AbortWithError(c, err)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(utils.AccessTokenCookie); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SetPrincipal stores the caller on the gin context. Tests use it to skip
// token handling.
func SetPrincipal(c *gin.Context, p *usecases.Principal) {
	c.Set(contextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.Actor.ID)
	c.Set(constants.ContextKeyUserRole, p.Actor.Role.String())
	c.Set(constants.ContextKeySessionID, p.SessionID)
}

// GetPrincipal returns the caller set by RequireAuth.
func GetPrincipal(c *gin.Context) (*usecases.Principal, bool) {
	v, ok := c.Get(contextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*usecases.Principal)
	return p, ok && p != nil
}

// GetActor is GetPrincipal reduced to what the access policy needs.
func GetActor(c *gin.Context) (access.Actor, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return access.Actor{}, false
	}
	return p.Actor, true
}
