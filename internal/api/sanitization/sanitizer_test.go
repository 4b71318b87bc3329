package sanitization

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>", "&lt;script&gt;"},
		{`a & "b" 'c'`, "a &amp; &quot;b&quot; &#39;c&#39;"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestEscapeHTMLRoundTrip(t *testing.T) {
	inputs := []string{
		`<img src=x onerror="alert('x')">`,
		"Tom & Jerry's <b>\"massage\"</b>",
		"&lt; already encoded &gt;",
		"geen speciale tekens",
	}

	for _, in := range inputs {
		escaped := EscapeHTML(in)
		assert.NotContains(t, escaped, "<")
		assert.NotContains(t, escaped, ">")
		assert.NotContains(t, escaped, `"`)
		assert.NotContains(t, escaped, "'")
		assert.Equal(t, in, html.UnescapeString(escaped))
	}
}

func TestNewlinesToBR(t *testing.T) {
	assert.Equal(t, "a<br>b<br>c", NewlinesToBR("a\r\nb\nc"))
	assert.False(t, strings.Contains(NewlinesToBR("x\r\ny"), "\r"))
}
