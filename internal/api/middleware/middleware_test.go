package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menyentuh/website/internal/api/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestRateLimitPerClient(t *testing.T) {
	limiter := NewClientRateLimiter(RateLimitConfig{Requests: 1, Interval: time.Hour, Burst: 2})
	router := gin.New()
	router.POST("/contact", RateLimitMiddleware(limiter), okHandler)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set(constants.HeaderRealIP, ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
	assert.Equal(t, 2, limiter.Len())
}

func TestRateLimitRetryAfter(t *testing.T) {
	// One token every 20s; the second request has to wait for it
	limiter := NewClientRateLimiter(RateLimitConfig{Requests: 3, Interval: time.Minute, Burst: 1})
	router := gin.New()
	router.POST("/contact", RateLimitMiddleware(limiter), okHandler)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set(constants.HeaderRealIP, "10.0.0.9")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, send().Code)

	w := send()
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Greater(t, retryAfter, 0)
	assert.LessOrEqual(t, retryAfter, 20)

	// Computing Retry-After must not use up the pending token
	assert.InDelta(t, 0, limiter.Limiter("10.0.0.9").Tokens(), 0.1)
}

func TestRateLimiterDefaultsBurst(t *testing.T) {
	limiter := NewClientRateLimiter(RateLimitConfig{Requests: 5, Interval: time.Minute})
	router := gin.New()
	router.POST("/contact", RateLimitMiddleware(limiter), okHandler)

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	limiter := NewClientRateLimiter(RateLimitConfig{Requests: 5, Interval: time.Minute, Burst: 5, TTL: time.Minute})
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Limiter("a")
	limiter.Limiter("b")
	require.Equal(t, 2, limiter.Len())

	now = now.Add(2 * time.Minute)
	limiter.Limiter("c")
	assert.Equal(t, 1, limiter.Len())
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(constants.HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderRequestID))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(CORSConfig{AllowedOrigins: []string{"https://menyentuh.nl"}}))
	router.POST("/", okHandler)
	router.OPTIONS("/", okHandler)

	tests := []struct {
		name       string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", http.MethodPost, "https://menyentuh.nl", false, http.StatusOK, "https://menyentuh.nl"},
		{"foreign origin", http.MethodPost, "https://evil.example", false, http.StatusForbidden, ""},
		{"no origin", http.MethodPost, "", false, http.StatusOK, ""},
		{"preflight", http.MethodOptions, "https://menyentuh.nl", true, http.StatusNoContent, "https://menyentuh.nl"},
		{"bare options reaches route", http.MethodOptions, "", false, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLimitRequestBody(t *testing.T) {
	var readErr error
	router := gin.New()
	router.POST("/", LimitRequestBody(8), func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))
	assert.NoError(t, readErr)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
	var maxErr *http.MaxBytesError
	assert.True(t, errors.As(readErr, &maxErr))
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders(true))
	router.GET("/", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
