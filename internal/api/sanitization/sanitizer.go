package sanitization

import (
	"strings"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var newlineReplacer = strings.NewReplacer(
	"\r\n", "<br>",
	"\n", "<br>",
)

// EscapeHTML escapes the five HTML special characters
func EscapeHTML(input string) string {
	return htmlReplacer.Replace(input)
}

// NewlinesToBR converts line breaks to <br> tags. Apply after escaping.
func NewlinesToBR(input string) string {
	return newlineReplacer.Replace(input)
}

// TrimValue trims surrounding whitespace from a submitted form value
func TrimValue(input string) string {
	return strings.TrimSpace(input)
}
