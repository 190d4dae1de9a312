package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicdesk/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh tokens as HttpOnly cookies.
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(AccessTokenCookie, accessToken, accessMaxAge,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshMaxAge,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// ClearAuthCookies expires both auth cookies.
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(AccessTokenCookie, "", -1,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1,
		cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// GetTokenFromCookie reads a token cookie, returning "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
