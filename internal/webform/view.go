package webform

// Status is the kind of feedback shown next to the form
type Status int

const (
	StatusInvalid Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// View is whatever renders the form: a page, a terminal, a test recorder
type View interface {
	// Focus moves the cursor to the named field (JSON field name)
	Focus(field string)
	ShowStatus(status Status, message string)
	// SetBusy disables the submit control while a request is in flight
	SetBusy(busy bool)
	// Reset clears every field after a successful submission
	Reset()
}
