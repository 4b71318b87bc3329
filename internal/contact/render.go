package contact

import (
	"fmt"
	"strings"

	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
	"github.com/menyentuh/website/internal/api/sanitization"
)

// Rendered is a submission ready to be mailed
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

// renderOrder is the fixed field order of both renderings
var renderOrder = []string{
	dto.FieldName,
	dto.FieldEmail,
	dto.FieldPhone,
	dto.FieldSubject,
	dto.FieldMessage,
}

const emptyValue = "-"

// Render builds the mail subject plus text and HTML bodies in Dutch
func Render(req *dto.ContactRequest, subjectPrefix string) Rendered {
	return Rendered{
		Subject: MailSubject(subjectPrefix, req.Subject),
		Text:    Summary(DefaultLang, req),
		HTML:    renderHTML(req),
	}
}

// MailSubject joins the configured prefix and the submitted subject on one line
func MailSubject(prefix, subject string) string {
	subject = strings.Join(strings.Fields(subject), " ")
	if prefix == "" {
		return subject
	}
	return prefix + ": " + subject
}

// Summary is the plain-text block, one "Label: value" line per field
func Summary(lang string, req *dto.ContactRequest) string {
	values := fieldValues(req)

	var b strings.Builder
	for i, field := range renderOrder {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", Label(lang, field), values[field])
	}
	return b.String()
}

func renderHTML(req *dto.ContactRequest) string {
	values := fieldValues(req)

	var b strings.Builder
	b.WriteString("<h2>Nieuw bericht via het contactformulier</h2>\n")
	for _, field := range renderOrder {
		value := sanitization.EscapeHTML(values[field])
		if field == dto.FieldMessage {
			value = sanitization.NewlinesToBR(value)
		}
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n", Label(DefaultLang, field), value)
	}
	return b.String()
}

func fieldValues(req *dto.ContactRequest) map[string]string {
	phone := req.Phone
	if phone == "" {
		phone = emptyValue
	}
	return map[string]string{
		dto.FieldName:    req.Name,
		dto.FieldEmail:   req.Email,
		dto.FieldPhone:   phone,
		dto.FieldSubject: req.Subject,
		dto.FieldMessage: req.Message,
	}
}
