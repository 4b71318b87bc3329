package routes

import (
	"github.com/menyentuh/website/internal/api/handlers"
	"github.com/menyentuh/website/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
}

// Middleware contains route-specific middleware
type Middleware struct {
	ContactRateLimit *middleware.ClientRateLimiter
}
