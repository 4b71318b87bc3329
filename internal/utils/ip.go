package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/menyentuh/website/internal/api/constants"
)

// IsIPAddress reports whether s parses as an IPv4 or IPv6 address
func IsIPAddress(s string) bool {
	return net.ParseIP(s) != nil
}

// GetRealIP extracts the client IP from proxy headers, falling back to gin's ClientIP.
// Header values that are not addresses are ignored.
func GetRealIP(c *gin.Context) string {
	// Try X-Real-IP first (set by the reverse proxy)
	if ip := strings.TrimSpace(c.GetHeader(constants.HeaderRealIP)); IsIPAddress(ip) {
		return ip
	}

	// X-Forwarded-For is "client, proxy1, proxy2"; the leftmost entry is the client
	if forwardedFor := c.GetHeader(constants.HeaderForwarded); forwardedFor != "" {
		clientIP := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if IsIPAddress(clientIP) {
			return clientIP
		}
	}

	return c.ClientIP()
}
