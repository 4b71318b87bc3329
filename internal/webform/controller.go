package webform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/contact"
)

const (
	defaultTimeout = 15 * time.Second
	whatsAppBase   = "https://wa.me/"
)

var ErrNoWhatsAppNumber = errors.New("no WhatsApp number configured")

// SubmitError is returned when the endpoint could not be reached or rejected the submission
type SubmitError struct {
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submit failed: %v", e.Err)
	}
	return fmt.Sprintf("submit failed (%d): %s", e.Status, e.Message)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Config configures a Controller
type Config struct {
	// Endpoint is the full URL of the contact route
	Endpoint       string
	WhatsAppNumber string
	Lang           string
	Timeout        time.Duration
}

// Controller drives the contact form: validation, submission and the WhatsApp fallback
type Controller struct {
	endpoint string
	whatsApp string
	lang     string
	client   *http.Client
	view     View
}

func NewController(cfg Config, view View) *Controller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Controller{
		endpoint: cfg.Endpoint,
		whatsApp: digitsOnly(cfg.WhatsAppNumber),
		lang:     contact.NormalizeLang(cfg.Lang),
		client:   &http.Client{Timeout: timeout},
		view:     view,
	}
}

// Submit validates the form and posts it to the endpoint. The view is left
// enabled again on every return path.
func (c *Controller) Submit(ctx context.Context, form Form) error {
	if err := c.check(form); err != nil {
		return err
	}

	msgs := messagesFor(c.lang)
	c.view.SetBusy(true)
	defer c.view.SetBusy(false)
	c.view.ShowStatus(StatusSending, msgs.Sending)

	if err := c.post(ctx, form); err != nil {
		message := msgs.Failed
		var submitErr *SubmitError
		if errors.As(err, &submitErr) && submitErr.Message != "" {
			message = submitErr.Message
		}
		c.view.ShowStatus(StatusError, message)
		return err
	}

	c.view.Reset()
	c.view.ShowStatus(StatusSuccess, msgs.Success)
	return nil
}

// WhatsApp validates the form and returns a wa.me link pre-filled with its summary
func (c *Controller) WhatsApp(form Form) (string, error) {
	if err := c.check(form); err != nil {
		return "", err
	}
	if c.whatsApp == "" {
		return "", ErrNoWhatsAppNumber
	}
	return WhatsAppLink(c.whatsApp, form.Summary(c.lang)), nil
}

// WhatsAppLink builds https://wa.me/<number>?text=<text>
func WhatsAppLink(number, text string) string {
	// wa.me wants %20 for spaces, not the "+" of form encoding
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return whatsAppBase + digitsOnly(number) + "?text=" + escaped
}

func (c *Controller) check(form Form) error {
	err := form.Validate(c.lang)
	if err == nil {
		return nil
	}

	var fieldErr *contact.FieldError
	if errors.As(err, &fieldErr) {
		c.view.Focus(fieldErr.Field)
		c.view.ShowStatus(StatusInvalid, fieldErr.Message)
	}
	return err
}

func (c *Controller) post(ctx context.Context, form Form) error {
	payload, err := json.Marshal(form.Request())
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &SubmitError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &SubmitError{Err: err}
	}
	defer resp.Body.Close()

	var body common.APIResponse
	// A non-JSON answer leaves body empty, which counts as a failure
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && body.OK {
		return nil
	}
	return &SubmitError{Status: resp.StatusCode, Message: body.Error}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
