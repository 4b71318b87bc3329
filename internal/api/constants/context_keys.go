package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyRequestID = "requestID"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
	HeaderRealIP    = "X-Real-IP"
	HeaderForwarded = "X-Forwarded-For"
)
