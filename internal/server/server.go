package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/handlers"
	"github.com/menyentuh/website/internal/api/middleware"
	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/server/routes"
	"github.com/menyentuh/website/internal/service"
)

const shutdownTimeout = 10 * time.Second

// NewServer creates a new server instance with all routes registered
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own request log is replaced by middleware.RequestLogger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	s := &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		mailer: service.NewMailService(cfg.Mail),
	}

	if !s.mailer.Configured() {
		logger.Warn("RESEND_API_KEY is not set, contact submissions will fail with 500")
	}

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(s.mailer),
		Contact: handlers.NewContactHandler(s.mailer, cfg.Mail.SubjectPrefix, logger),
	}
	m := &routes.Middleware{
		ContactRateLimit: middleware.NewClientRateLimiter(middleware.RateLimitConfig{
			Requests: cfg.ContactRatePerMinute,
			Interval: time.Minute,
			Burst:    cfg.ContactRateBurst,
		}),
	}

	routes.SetupGlobalMiddleware(router, cfg, logger)
	routes.Setup(router, h, m, cfg.StaticDir)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
