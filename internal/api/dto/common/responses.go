package common

// APIResponse is the JSON envelope every public endpoint returns
type APIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status         string `json:"status"`
	MailConfigured bool   `json:"mail_configured"`
	Version        string `json:"version"`
}

// User-facing error messages that are not tied to a form field
const (
	MsgMethodNotAllowed  = "Method not allowed"
	MsgBodyTooLarge      = "Request body too large"
	MsgInvalidBody       = "Invalid request body"
	MsgMissingMailConfig = "Missing mail configuration"
	MsgSendFailed        = "Failed to send email"
	MsgTooManyRequests   = "Te veel verzoeken. Probeer het later opnieuw."
	MsgInternal          = "Internal server error"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse() APIResponse {
	return APIResponse{OK: true}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		OK:    false,
		Error: message,
	}
}
