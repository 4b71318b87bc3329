package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/constants"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/utils"
)

// RequestLogger logs one line per request through the application logger
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.GetString(constants.ContextKeyRequestID),
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
