package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/http/middleware"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestLogging_AssignsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	handler := middleware.Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, int64(http.StatusTeapot), entry.ContextMap()["status_code"])
	assert.Equal(t, seen, entry.ContextMap()["request_id"])
}

func TestLogging_ReusesIncomingRequestID(t *testing.T) {
	incoming := uuid.NewString()
	handler := middleware.Logging(zap.NewNop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "not-a-uuid\nInjected: 1")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid\nInjected: 1", w.Header().Get(middleware.RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	handler := middleware.Recovery(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var apiErr domain.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, domain.ErrorTypeInternal, apiErr.Type)
	assert.Equal(t, "An unexpected error occurred", apiErr.Detail)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	m := observability.NewMetrics()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/api/v1/customers/{id}", okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+uuid.NewString(), nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `stack_tracker_http_request_duration_seconds_count{method="GET",route="/api/v1/customers/{id}",status="200"} 3`)
}

func TestMetrics_NilIsPassThrough(t *testing.T) {
	handler := middleware.Metrics(nil)(okHandler)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	cfg := &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
		WhitelistIPs:      []string{"10.0.0.9"},
		WhitelistPaths:    []string{"/health", "/swagger/*"},
	}
	handler := middleware.NewRateLimiter(cfg, zap.NewNop()).LimitByIP(okHandler)

	do := func(path, remote string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("limits per client", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("/api/v1/tools", "192.168.1.1:1000"))
		assert.Equal(t, http.StatusOK, do("/api/v1/tools", "192.168.1.1:1001"))
		assert.Equal(t, http.StatusTooManyRequests, do("/api/v1/tools", "192.168.1.1:1002"))
		assert.Equal(t, http.StatusOK, do("/api/v1/tools", "192.168.1.2:1000"), "other clients are unaffected")
	})

	t.Run("whitelists", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, do("/health", "192.168.1.3:1000"))
			assert.Equal(t, http.StatusOK, do("/swagger/index.html", "192.168.1.3:1000"))
			assert.Equal(t, http.StatusOK, do("/api/v1/tools", "10.0.0.9:1000"))
		}
	})

	t.Run("forwarded for", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.5")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))

		var apiErr domain.APIError
		require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
		assert.Equal(t, domain.ErrorTypeRateLimited, apiErr.Type)
		assert.Equal(t, "Too Many Requests", apiErr.Title)
	})
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}
	handler := middleware.NewRateLimiter(cfg, zap.NewNop()).LimitByIP(okHandler)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func preflight(t *testing.T, cfg *config.CORSConfig, environment, origin string) *httptest.ResponseRecorder {
	t.Helper()
	handler := middleware.CORS(cfg, environment, zap.NewNop())(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tools", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	base := config.CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}

	t.Run("development allows any origin", func(t *testing.T) {
		cfg := base
		w := preflight(t, &cfg, "development", "http://localhost:5173")
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production without origins denies", func(t *testing.T) {
		cfg := base
		w := preflight(t, &cfg, "production", "https://evil.example")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit origins", func(t *testing.T) {
		cfg := base
		cfg.AllowedOrigins = []string{"https://app.example.com"}
		assert.Equal(t, "https://app.example.com",
			preflight(t, &cfg, "production", "https://app.example.com").Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, preflight(t, &cfg, "production", "https://other.example").Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	cfg := &config.SecurityConfig{
		EnableHSTS:            true,
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		ContentSecurityPolicy: "default-src 'self'",
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
	handler := middleware.SecurityHeaders(cfg)(okHandler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
