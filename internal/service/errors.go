package service

import (
	"errors"
	"fmt"

	"github.com/menyentuh/website/internal/logging"
)

// Sentinel errors for service layer
var (
	ErrMailNotConfigured = errors.New("mail service not configured")
)

// UpstreamError is a non-success answer from the email API
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("email API returned status %d", e.Status)
	}
	return fmt.Sprintf("email API returned status %d: %s", e.Status, e.Message)
}

// Unwrap lets callers match any provider failure with errors.Is(err, logging.ErrUpstream)
func (e *UpstreamError) Unwrap() error {
	return logging.ErrUpstream
}
