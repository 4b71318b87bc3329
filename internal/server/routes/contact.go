package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/handlers"
	"github.com/menyentuh/website/internal/api/middleware"
	"github.com/menyentuh/website/internal/contact"
)

// ContactPath is the endpoint the site's contact form posts to
const ContactPath = "/api/contact"

// SetupContactRoutes configures the contact form route. Every method is routed
// to the handler so that it can answer 405 with an Allow header.
func SetupContactRoutes(router *gin.Engine, h *handlers.ContactHandler, m *Middleware) {
	chain := []gin.HandlerFunc{}
	if m != nil && m.ContactRateLimit != nil {
		chain = append(chain, middleware.RateLimitMiddleware(m.ContactRateLimit))
	}
	chain = append(chain, middleware.LimitRequestBody(contact.MaxBodyBytes), h.Submit)

	router.Any(ContactPath, chain...)
}
