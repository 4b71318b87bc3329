package contact

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/url"
	"strconv"

	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
	"github.com/menyentuh/website/internal/api/sanitization"
)

// MaxBodyBytes is the largest request body the contact endpoint reads
const MaxBodyBytes int64 = 1 << 20

// Supported request media types
const (
	MediaTypeJSON = "application/json"
	MediaTypeForm = "application/x-www-form-urlencoded"
)

// ParseBody decodes a submission according to its Content-Type.
// Malformed or unsupported bodies give an empty request so that validation
// reports the first missing field. Every value but the honeypot is trimmed.
func ParseBody(contentType string, body []byte) *dto.ContactRequest {
	fields := decodeFields(contentType, body)
	return &dto.ContactRequest{
		Name:    sanitization.TrimValue(fields[dto.FieldName]),
		Email:   sanitization.TrimValue(fields[dto.FieldEmail]),
		Phone:   sanitization.TrimValue(fields[dto.FieldPhone]),
		Subject: sanitization.TrimValue(fields[dto.FieldSubject]),
		Message: sanitization.TrimValue(fields[dto.FieldMessage]),
		Honey:   fields[dto.FieldHoney],
	}
}

func decodeFields(contentType string, body []byte) map[string]string {
	if contentType == "" {
		return map[string]string{}
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return map[string]string{}
	}

	switch mediaType {
	case MediaTypeJSON:
		return decodeJSON(body)
	case MediaTypeForm:
		return decodeForm(body)
	default:
		return map[string]string{}
	}
}

func decodeJSON(body []byte) map[string]string {
	fields := map[string]string{}

	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fields
	}
	// The whole body must be one JSON value
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fields
	}

	for key, value := range raw {
		fields[key] = stringify(value)
	}
	return fields
}

// stringify renders JSON scalars as text; objects and arrays become empty
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func decodeForm(body []byte) map[string]string {
	fields := map[string]string{}

	// ParseQuery keeps every pair it managed to decode, even on error
	values, _ := url.ParseQuery(string(body))
	for key := range values {
		fields[key] = values.Get(key)
	}
	return fields
}
