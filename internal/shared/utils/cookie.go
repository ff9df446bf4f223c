package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/config"
)

const AccessTokenCookie = "access_token"

// SetAccessTokenCookie stores the access token as an HttpOnly cookie.
func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, token, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// ClearAccessTokenCookie expires the access token cookie.
func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
