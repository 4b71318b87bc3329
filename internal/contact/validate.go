package contact

import (
	"github.com/go-playground/validator/v10"

	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
	"github.com/menyentuh/website/internal/api/validation"
)

// FieldError is the first invalid field of a submission
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validator checks submissions in the order name, email, subject, message
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validation.New()}
}

// Validate returns a *FieldError for the first invalid field, or nil.
// The request is expected to be trimmed already (see ParseBody).
func (v *Validator) Validate(req *dto.ContactRequest, lang string) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	first, ok := validation.FirstError(err)
	if !ok {
		return err
	}

	return &FieldError{
		Field:   first.Field,
		Message: FieldMessage(lang, first.Field),
	}
}
