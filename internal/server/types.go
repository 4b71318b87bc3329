package server

import (
	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
	mailer *service.MailService
}
