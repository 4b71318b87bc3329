package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/constants"
	"github.com/menyentuh/website/internal/logging"
)

// HandleAPIError logs err with the request context and writes the user-facing
// message. err never reaches the response body.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, status int, message string) {
	if logger != nil {
		logger.LogHTTPError(
			c.GetString(constants.ContextKeyRequestID),
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			message,
			err,
		)
	}

	HandleError(c, status, message)
}
