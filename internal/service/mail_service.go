package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/contact"
	"github.com/menyentuh/website/internal/logging"
)

// upstream error bodies larger than this are not worth decoding
const maxErrorBodyBytes = 64 << 10

var tracer = otel.Tracer("github.com/menyentuh/website/internal/service")

// MailService relays messages to a Resend compatible email API
type MailService struct {
	cfg    config.MailConfig
	client *http.Client
}

// NewMailService creates a mail service. An empty API key yields a service
// that reports Configured() == false and refuses to send.
func NewMailService(cfg config.MailConfig) *MailService {
	return &MailService{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Email is the request body of POST /emails
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// upstreamErrorBody is the error payload of the email API
type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Configured reports whether provider credentials are present
func (s *MailService) Configured() bool {
	return s != nil && s.cfg.APIKey != ""
}

// SendContactMessage mails a rendered submission to the practice inbox with
// Reply-To set to the visitor.
func (s *MailService) SendContactMessage(ctx context.Context, msg contact.Rendered, replyTo string) error {
	return s.Send(ctx, &Email{
		From:    s.cfg.From,
		To:      []string{s.cfg.To},
		ReplyTo: replyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	})
}

// Send performs exactly one API call. Non-2xx answers become *UpstreamError.
func (s *MailService) Send(ctx context.Context, email *Email) (err error) {
	if !s.Configured() {
		return ErrMailNotConfigured
	}

	ctx, span := tracer.Start(ctx, "mail.send", trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	jsonData, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+"/emails", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return logging.WrapError(err, "send mail")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil
	}

	return &UpstreamError{
		Status:  resp.StatusCode,
		Message: readUpstreamMessage(resp.Body),
	}
}

// readUpstreamMessage extracts a human readable message, or "" when the body
// is not the expected JSON.
func readUpstreamMessage(body io.Reader) string {
	var payload upstreamErrorBody
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBodyBytes)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// UpstreamMessage returns the provider's message carried by err, if any
func UpstreamMessage(err error) (string, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		return upstreamErr.Message, true
	}
	return "", false
}
