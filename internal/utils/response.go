package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/dto/common"
)

// HandleSuccess sends {"ok": true}
func HandleSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse())
}

// HandleError sends {"ok": false, "error": message} and stops the chain
func HandleError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
