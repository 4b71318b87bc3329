package webform

import (
	"strings"

	"github.com/go-playground/validator/v10"

	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
	"github.com/menyentuh/website/internal/api/validation"
	"github.com/menyentuh/website/internal/contact"
)

// Form holds the values of the contact form as the visitor typed them.
// Field order is the order in which validation reports problems.
type Form struct {
	Name    string `json:"naam" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"telefoon"`
	Subject string `json:"onderwerp" binding:"required"`
	Message string `json:"bericht" binding:"required"`
}

var formValidator = validation.New()

// Trimmed returns a copy of the form with surrounding whitespace removed
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate returns a *contact.FieldError for the first invalid field, or nil
func (f Form) Validate(lang string) error {
	return validateWith(formValidator, f.Trimmed(), lang)
}

func validateWith(v *validator.Validate, f Form, lang string) error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}

	first, ok := validation.FirstError(err)
	if !ok {
		return err
	}
	return &contact.FieldError{
		Field:   first.Field,
		Message: contact.FieldMessage(lang, first.Field),
	}
}

// Request converts the trimmed form into the payload the contact endpoint accepts
func (f Form) Request() *dto.ContactRequest {
	t := f.Trimmed()
	return &dto.ContactRequest{
		Name:    t.Name,
		Email:   t.Email,
		Phone:   t.Phone,
		Subject: t.Subject,
		Message: t.Message,
	}
}

// Summary is the plain-text field summary shared by the mail and WhatsApp paths
func (f Form) Summary(lang string) string {
	return contact.Summary(lang, f.Request())
}
