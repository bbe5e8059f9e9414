package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chennai-a11y/prefsync/internal/infrastructure/auth"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityEngine(t *testing.T, sessions SessionVerifier) *gin.Engine {
	t.Helper()
	r := gin.New()
	mw := NewIdentityMiddleware(sessions, "prefsync_session", logger.NewNop())
	r.GET("/whoami", mw.Resolve(), func(c *gin.Context) {
		c.String(http.StatusOK, utils.GetIdentity(c))
	})
	return r
}

func whoami(r *gin.Engine, cookies ...*http.Cookie) string {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Body.String()
}

func TestIdentityMiddleware_Resolve(t *testing.T) {
	sessions := auth.NewSessionService("secret", 1)
	token, err := sessions.Issue("session-user")
	require.NoError(t, err)

	r := identityEngine(t, sessions)
	userCookie := &http.Cookie{Name: utils.UserIDCookie, Value: "cookie-user"}
	sessionCookie := &http.Cookie{Name: "prefsync_session", Value: token}

	tests := []struct {
		name    string
		cookies []*http.Cookie
		want    string
	}{
		{"anonymous", nil, ""},
		{"userId cookie", []*http.Cookie{userCookie}, "cookie-user"},
		{"session cookie", []*http.Cookie{sessionCookie}, "session-user"},
		{"userId cookie wins", []*http.Cookie{sessionCookie, userCookie}, "cookie-user"},
		{"bad session ignored", []*http.Cookie{{Name: "prefsync_session", Value: "garbage"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, whoami(r, tt.cookies...))
		})
	}
}

func TestIdentityMiddleware_NoSessions(t *testing.T) {
	r := identityEngine(t, nil)
	assert.Equal(t, "", whoami(r, &http.Cookie{Name: "prefsync_session", Value: "x"}))
}

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(RequestTimeout(50 * time.Millisecond))

	var remaining time.Duration
	var hasDeadline bool
	r.GET("/", func(c *gin.Context) {
		var deadline time.Time
		deadline, hasDeadline = c.Request.Context().Deadline()
		remaining = time.Until(deadline)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
	assert.LessOrEqual(t, remaining, 50*time.Millisecond)
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error occurred"}`, w.Body.String())
}
