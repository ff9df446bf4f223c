package middleware

import (
	"github.com/gin-gonic/gin"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// RequireRoles lets the request through when the authenticated caller has
// one of roles. It must run after RequireAuth.
func RequireRoles(message string, roles ...vo.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			utils.AbortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		utils.AbortWithError(c, errors.NewForbiddenError(message))
	}
}

// RequireEmployeeManager admits HR and administrators.
func RequireEmployeeManager() gin.HandlerFunc {
	return RequireRoles("only HR and administrators can manage employees", vo.RoleHR, vo.RoleAdmin)
}
