package contact

import (
	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
)

// Supported languages of the site
const (
	LangNL = "nl"
	LangEN = "en"
)

// DefaultLang is the language of server responses
const DefaultLang = LangNL

var fieldMessages = map[string]map[string]string{
	LangNL: {
		dto.FieldName:    "Vul je naam in.",
		dto.FieldEmail:   "Vul een geldig e-mailadres in.",
		dto.FieldSubject: "Kies een onderwerp.",
		dto.FieldMessage: "Schrijf een bericht.",
	},
	LangEN: {
		dto.FieldName:    "Please enter your name.",
		dto.FieldEmail:   "Please enter a valid email address.",
		dto.FieldSubject: "Please choose a subject.",
		dto.FieldMessage: "Please write a message.",
	},
}

var labels = map[string]map[string]string{
	LangNL: {
		dto.FieldName:    "Naam",
		dto.FieldEmail:   "E-mail",
		dto.FieldPhone:   "Telefoon",
		dto.FieldSubject: "Onderwerp",
		dto.FieldMessage: "Bericht",
	},
	LangEN: {
		dto.FieldName:    "Name",
		dto.FieldEmail:   "Email",
		dto.FieldPhone:   "Phone",
		dto.FieldSubject: "Subject",
		dto.FieldMessage: "Message",
	},
}

// NormalizeLang maps a language tag like "en-GB" onto a supported language
func NormalizeLang(lang string) string {
	if len(lang) >= 2 {
		if _, ok := fieldMessages[lang[:2]]; ok {
			return lang[:2]
		}
	}
	return DefaultLang
}

// FieldMessage returns the user-facing validation message for a form field
func FieldMessage(lang, field string) string {
	return fieldMessages[NormalizeLang(lang)][field]
}

// Label returns the display label of a form field
func Label(lang, field string) string {
	return labels[NormalizeLang(lang)][field]
}
