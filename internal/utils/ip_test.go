package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.0.2.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.5"}, "203.0.113.5"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1"}, "198.51.100.2"},
		{"real ip wins", map[string]string{"X-Real-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.2"}, "203.0.113.5"},
		{"ipv6", map[string]string{"X-Real-IP": "2001:db8::1"}, "2001:db8::1"},
		{"garbage ignored", map[string]string{"X-Real-IP": "not-an-ip", "X-Forwarded-For": "also bad"}, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = "192.0.2.1:1234"
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}

func TestIsIPAddress(t *testing.T) {
	assert.True(t, IsIPAddress("127.0.0.1"))
	assert.True(t, IsIPAddress("::1"))
	assert.False(t, IsIPAddress("localhost"))
	assert.False(t, IsIPAddress(""))
}
