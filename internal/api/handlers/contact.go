package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/constants"
	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/contact"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/service"
	"github.com/menyentuh/website/internal/utils"
)

// Mailer delivers a rendered submission to the practice inbox
type Mailer interface {
	Configured() bool
	SendContactMessage(ctx context.Context, msg contact.Rendered, replyTo string) error
}

type ContactHandler struct {
	mailer        Mailer
	validator     *contact.Validator
	subjectPrefix string
	logger        *logging.Logger
}

func NewContactHandler(mailer Mailer, subjectPrefix string, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		mailer:        mailer,
		validator:     contact.NewValidator(),
		subjectPrefix: subjectPrefix,
		logger:        logger,
	}
}

// Submit handles one contact form submission. The route must be wrapped in
// middleware.LimitRequestBody so that oversized bodies fail while reading.
func (h *ContactHandler) Submit(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		utils.HandleError(c, http.StatusMethodNotAllowed, common.MsgMethodNotAllowed)
		return
	}

	if h.mailer == nil || !h.mailer.Configured() {
		utils.HandleAPIError(c, h.logger, service.ErrMailNotConfigured, http.StatusInternalServerError, common.MsgMissingMailConfig)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.HandleAPIError(c, h.logger, err, http.StatusRequestEntityTooLarge, common.MsgBodyTooLarge)
			return
		}
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.MsgInvalidBody)
		return
	}

	req := contact.ParseBody(c.GetHeader("Content-Type"), body)

	// Bots get the same answer as people, but nothing is sent
	if req.IsBot() {
		h.logger.Info("Honeypot filled, dropping submission %s from %s", c.GetString(constants.ContextKeyRequestID), utils.GetRealIP(c))
		utils.HandleSuccess(c)
		return
	}

	if err := h.validator.Validate(req, contact.DefaultLang); err != nil {
		var fieldErr *contact.FieldError
		if errors.As(err, &fieldErr) {
			utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, fieldErr.Message)
			return
		}
		utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.MsgInternal)
		return
	}

	msg := contact.Render(req, h.subjectPrefix)
	if err := h.mailer.SendContactMessage(c.Request.Context(), msg, req.Email); err != nil {
		message := common.MsgSendFailed
		if upstream, ok := service.UpstreamMessage(err); ok {
			message = upstream
		}
		utils.HandleAPIError(c, h.logger, err, http.StatusBadGateway, message)
		return
	}

	h.logger.Info("Contact message %s relayed (subject %q)", c.GetString(constants.ContextKeyRequestID), req.Subject)
	utils.HandleSuccess(c)
}
