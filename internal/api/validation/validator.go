package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag the DTOs carry, same as gin's binding tag
const TagName = "binding"

// emailRegex accepts anything shaped like local@domain.tld
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator that reads binding tags, reports JSON field names
// and knows the custom rules below.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_email", validateContactEmail)
}

// IsValidEmail checks the two-part email pattern
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError flattens validator errors in struct field order
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errs
}

// FirstError returns the first failing field of a Struct() result
func FirstError(err error) (ValidationError, bool) {
	errs := FormatValidationError(err)
	if len(errs) == 0 {
		return ValidationError{}, false
	}
	return errs[0], true
}
