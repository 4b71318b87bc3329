package contact

// Form field names posted by the website
const (
	FieldName    = "naam"
	FieldEmail   = "email"
	FieldPhone   = "telefoon"
	FieldSubject = "onderwerp"
	FieldMessage = "bericht"
	FieldHoney   = "_honey"
)

// ContactRequest represents a contact form submission.
// Field order is the validation order.
type ContactRequest struct {
	Name    string `json:"naam" form:"naam" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,contact_email"`
	Phone   string `json:"telefoon,omitempty" form:"telefoon"`
	Subject string `json:"onderwerp" form:"onderwerp" binding:"required"`
	Message string `json:"bericht" form:"bericht" binding:"required"`
	Honey   string `json:"_honey,omitempty" form:"_honey"`
}

// IsBot reports whether the hidden honeypot field was filled in.
// Honey holds the raw value, so whitespace counts as filled.
func (r *ContactRequest) IsBot() bool {
	return r.Honey != ""
}
