package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/api/middleware"
	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/logging"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, m *Middleware, staticDir string) {
	SetupHealthRoutes(router, h.Health)
	SetupContactRoutes(router, h.Contact, m)
	SetupStaticRoutes(router, staticDir)
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Development:    !cfg.IsProduction(),
	}))
}

// SetupStaticRoutes serves the pre-built site for every unmatched GET/HEAD
func SetupStaticRoutes(router *gin.Engine, staticDir string) {
	if staticDir == "" {
		router.NoRoute(notFound)
		return
	}

	files := http.FileServer(http.Dir(staticDir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, common.NewErrorResponse(http.StatusText(http.StatusNotFound)))
}
