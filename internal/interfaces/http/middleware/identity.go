package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/infrastructure/auth"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

// SessionVerifier validates a session cookie value.
type SessionVerifier interface {
	Verify(token string) (*auth.SessionClaims, error)
}

// IdentityMiddleware resolves the caller's identity token. It never rejects
// a request; handlers decide whether an identity is required.
type IdentityMiddleware struct {
	sessions   SessionVerifier
	cookieName string
	logger     logger.Interface
}

func NewIdentityMiddleware(sessions SessionVerifier, cookieName string, logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Resolve checks the userId cookie first, then the signed session cookie.
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := utils.GetCookie(c, utils.UserIDCookie); token != "" {
			utils.SetIdentity(c, token)
			c.Next()
			return
		}

		if m.sessions != nil && m.cookieName != "" {
			if raw := utils.GetCookie(c, m.cookieName); raw != "" {
				claims, err := m.sessions.Verify(raw)
				if err != nil {
					m.logger.Debugw("ignoring invalid session cookie", "error", err)
				} else {
					utils.SetIdentity(c, claims.UserID)
					c.Set("session_id", claims.SessionID)
				}
			}
		}

		c.Next()
	}
}
