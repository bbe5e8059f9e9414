package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/auth"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/config"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/store"
	sharedConfig "github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{RequestTimeoutSeconds: 5},
		Store:  sharedConfig.StoreConfig{Driver: sharedConfig.StoreDriverMemory},
		Session: sharedConfig.SessionConfig{
			Secret:     "test-secret",
			CookieName: "prefsync_session",
			ExpHours:   1,
		},
		Cookie: sharedConfig.CookieConfig{
			Path:                  "/",
			SameSite:              "Lax",
			LanguageMaxAgeSeconds: 900,
		},
		RateLimit: sharedConfig.RateLimitConfig{Requests: 3, WindowSeconds: 60},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	t.Helper()
	c, err := NewContainerWithStore(cfg, store.NewMemoryStore(), redisClient, logger.NewNop())
	require.NoError(t, err)
	c.SetupRoutes()
	return c.Engine()
}

func do(engine *gin.Engine, method, path, body string, cookies ...*stdhttp.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestServer_SettingsRoundTrip(t *testing.T) {
	engine := newTestServer(t, testConfig(), nil)
	user := &stdhttp.Cookie{Name: "userId", Value: "u-1"}

	w := do(engine, stdhttp.MethodGet, "/api/settings", "", user)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, string(preference.DefaultDocument()), w.Body.String())

	body := `{"darkMode":false,"fontSize":"large","language":"ta"}`
	w = do(engine, stdhttp.MethodPost, "/api/settings", body, user)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"அமைப்புகள் வெற்றிகரமாக சேமிக்கப்பட்டன!"}`, w.Body.String())

	w = do(engine, stdhttp.MethodGet, "/api/settings", "", user)
	assert.JSONEq(t, body, w.Body.String())

	other := &stdhttp.Cookie{Name: "userId", Value: "u-2"}
	w = do(engine, stdhttp.MethodGet, "/api/settings", "", other)
	assert.JSONEq(t, string(preference.DefaultDocument()), w.Body.String())
}

func TestServer_SaveSettingsLenientBodies(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		stored string
	}{
		{"empty body", "", `{}`},
		{"array", `[1,2]`, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestServer(t, testConfig(), nil)
			user := &stdhttp.Cookie{Name: "userId", Value: "u-1"}

			w := do(engine, stdhttp.MethodPost, "/api/settings", tt.body, user)
			require.Equal(t, stdhttp.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true,"message":"Settings saved successfully!"}`, w.Body.String())

			w = do(engine, stdhttp.MethodGet, "/api/settings", "", user)
			assert.JSONEq(t, tt.stored, w.Body.String())
		})
	}
}

func TestServer_Unauthenticated(t *testing.T) {
	engine := newTestServer(t, testConfig(), nil)

	w := do(engine, stdhttp.MethodGet, "/api/settings", "")
	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"User not authenticated"}`, w.Body.String())

	w = do(engine, stdhttp.MethodPost, "/api/settings", `{"darkMode":true}`)
	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
}

func TestServer_SessionCookieIdentity(t *testing.T) {
	cfg := testConfig()
	engine := newTestServer(t, cfg, nil)

	token, err := auth.NewSessionService(cfg.Session.Secret, 1).Issue("session-user")
	require.NoError(t, err)
	session := &stdhttp.Cookie{Name: cfg.Session.CookieName, Value: token}

	w := do(engine, stdhttp.MethodPost, "/api/settings", `{"language":"en"}`, session)
	require.Equal(t, stdhttp.StatusOK, w.Code)

	// The same identity through the plain cookie sees the write.
	w = do(engine, stdhttp.MethodGet, "/api/settings", "", &stdhttp.Cookie{Name: "userId", Value: "session-user"})
	assert.JSONEq(t, `{"language":"en"}`, w.Body.String())

	// userId wins over the session cookie.
	w = do(engine, stdhttp.MethodGet, "/api/settings", "", &stdhttp.Cookie{Name: "userId", Value: "cookie-user"}, session)
	assert.JSONEq(t, string(preference.DefaultDocument()), w.Body.String())

	forged := &stdhttp.Cookie{Name: cfg.Session.CookieName, Value: "forged"}
	w = do(engine, stdhttp.MethodGet, "/api/settings", "", forged)
	assert.Equal(t, stdhttp.StatusUnauthorized, w.Code)
}

func TestServer_TranslationsAndLanguage(t *testing.T) {
	engine := newTestServer(t, testConfig(), nil)

	w := do(engine, stdhttp.MethodGet, "/api/translations/ta", "")
	assert.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "அமைப்புகள்")

	w = do(engine, stdhttp.MethodGet, "/api/translations/xx", "")
	assert.Equal(t, stdhttp.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Language not supported"}`, w.Body.String())

	w = do(engine, stdhttp.MethodPost, "/api/language", `{"language":"ta"}`)
	assert.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "language=ta")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=900")

	w = do(engine, stdhttp.MethodPost, "/api/language", `{"language":"xx"}`)
	assert.Equal(t, stdhttp.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Unsupported language"}`, w.Body.String())
}

func TestServer_HealthAndNotFound(t *testing.T) {
	engine := newTestServer(t, testConfig(), nil)

	w := do(engine, stdhttp.MethodGet, "/health", "")
	assert.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(engine, stdhttp.MethodGet, "/settings.html", "")
	assert.Equal(t, stdhttp.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestServer_RateLimitWithRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	engine := newTestServer(t, testConfig(), client)

	for i := 0; i < 3; i++ {
		w := do(engine, stdhttp.MethodGet, "/api/translations/en", "")
		require.Equal(t, stdhttp.StatusOK, w.Code)
	}
	w := do(engine, stdhttp.MethodGet, "/api/translations/en", "")
	assert.Equal(t, stdhttp.StatusTooManyRequests, w.Code)

	// Health is outside /api.
	w = do(engine, stdhttp.MethodGet, "/health", "")
	assert.Equal(t, stdhttp.StatusOK, w.Code)
}

func TestContainer_ShutdownLeavesInjectedRedisOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c, err := NewContainerWithStore(testConfig(), store.NewMemoryStore(), client, logger.NewNop())
	require.NoError(t, err)
	c.Shutdown()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestContainer_ShutdownClosesOwnRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis = sharedConfig.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}

	c, err := NewContainer(cfg, logger.NewNop())
	require.NoError(t, err)
	opened := c.redis
	require.NotNil(t, opened)

	c.Shutdown()

	assert.ErrorIs(t, opened.Ping(context.Background()).Err(), redis.ErrClosed)
}
