package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/logging"
)

func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Menyentuh</h1>"), 0o644))

	return &config.Config{
		Environment:          "test",
		Port:                 "0",
		StaticDir:            staticDir,
		LogLevel:             "error",
		LogFile:              filepath.Join(t.TempDir(), "server.log"),
		ContactRatePerMinute: 2,
		ContactRateBurst:     2,
		ServiceName:          "menyentuh-website",
		Mail: config.MailConfig{
			APIKey:        "re_test",
			APIURL:        apiURL,
			From:          "Menyentuh <website@menyentuh.nl>",
			To:            "info@menyentuh.nl",
			SubjectPrefix: "Nieuw bericht via menyentuh.nl",
			Timeout:       2 * time.Second,
		},
	}
}

func testServer(t *testing.T, apiURL string) *Server {
	t.Helper()
	cfg := testConfig(t, apiURL)
	logger, err := logging.NewLogger(logging.DefaultConfig(cfg.LogLevel, cfg.LogFile))
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return NewServer(cfg, logger)
}

func TestServerRoutes(t *testing.T) {
	var sent atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sent.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer upstream.Close()

	handler := testServer(t, upstream.URL).Handler()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body common.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.True(t, body.MailConfigured)
	})

	t.Run("static site", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Menyentuh")
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("unknown post", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("contact method not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
	})

	t.Run("contact preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://menyentuh.nl")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://menyentuh.nl", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("contact bare options", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/contact", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("contact accepted", func(t *testing.T) {
		body := `{"naam":"Sari","email":"sari@example.com","onderwerp":"Massage","bericht":"Hallo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.10:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, int32(1), sent.Load())
	})
}

func TestServerContactRateLimit(t *testing.T) {
	handler := testServer(t, "http://127.0.0.1:1").Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "198.51.100.7:4000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// Two invalid submissions pass the limiter, the third is rejected
	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestServerStartStopsOnCancel(t *testing.T) {
	srv := testServer(t, "http://127.0.0.1:1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
