package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/ports"
)

func newRequest(method, path, authorization string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = bearerToken("  bearer xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	_, err = bearerToken("Bearer")
	assert.Error(t, err)
}

func TestRateLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.RateLimitPerHour = 2
	env := setupTestServer(t, cfg)
	env.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{}).Maybe()

	for i := 0; i < 2; i++ {
		w := serve(env.handler, newRequest(http.MethodGet, "/api/trips", ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := serve(env.handler, newRequest(http.MethodGet, "/api/trips", ""))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Rate limit exceeded"}`, w.Body.String())

	t.Run("HealthAndMetricsExempt", func(t *testing.T) {
		w := serve(env.handler, newRequest(http.MethodGet, "/api/health", ""))
		assert.Equal(t, http.StatusOK, w.Code)

		w = serve(env.handler, newRequest(http.MethodGet, "/metrics", ""))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SeparateClients", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/api/trips", "")
		req.RemoteAddr = "198.51.100.7:4000"
		w := serve(env.handler, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCORS(t *testing.T) {
	env := setupTestServer(t, defaultServerConfig())

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/trips", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := serve(env.handler, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/trips", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := serve(env.handler, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestBodyLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.MaxBodyBytes = 64
	env := setupTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"ana@example.com","password":"`+strings.Repeat("x", 100)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(env.handler, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "Request body too large")
}

func TestRateLimited(t *testing.T) {
	assert.True(t, rateLimited("/api/trips"))
	assert.True(t, rateLimited("/api/auth/login"))
	assert.False(t, rateLimited("/api/health"))
	assert.False(t, rateLimited("/metrics"))
}
