package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/shared/config"
)

const (
	// UserIDCookie carries a pre-established identity token.
	UserIDCookie = "userId"
	// LanguageCookie carries the short-lived language preference.
	LanguageCookie = "language"
)

// SetLanguageCookie stores the chosen language code as an HttpOnly cookie
// that expires after cookieConfig.LanguageMaxAgeSeconds.
func SetLanguageCookie(c *gin.Context, cookieConfig config.CookieConfig, language string) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		LanguageCookie,
		language,
		cookieConfig.LanguageMaxAgeSeconds,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetCookie returns the named cookie value, or "" when absent.
func GetCookie(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return value
}

// parseSameSite converts string to http.SameSite
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
