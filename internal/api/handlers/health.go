package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/version"
)

type HealthHandler struct {
	mailer Mailer
}

func NewHealthHandler(mailer Mailer) *HealthHandler {
	return &HealthHandler{mailer: mailer}
}

// Check reports liveness. A missing mail key does not fail the check; it only
// shows up as mail_configured=false.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:         "ok",
		MailConfigured: h.mailer != nil && h.mailer.Configured(),
		Version:        version.Version,
	})
}
