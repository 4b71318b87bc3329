package main

import (
	"github.com/spf13/cobra"

	dto "github.com/menyentuh/website/internal/api/dto/v1/contact"
	"github.com/menyentuh/website/internal/webform"
)

// flagForField maps form field names onto CLI flags
var flagForField = map[string]string{
	dto.FieldName:    "name",
	dto.FieldEmail:   "email",
	dto.FieldPhone:   "phone",
	dto.FieldSubject: "subject",
	dto.FieldMessage: "message",
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("email", "", "Your email address")
	cmd.Flags().String("phone", "", "Your phone number (optional)")
	cmd.Flags().String("subject", "", "Subject, e.g. the treatment you are interested in")
	cmd.Flags().String("message", "", "Your message")
	cmd.Flags().String("lang", "", "Language of the feedback (nl or en)")
}

func formFromFlags(cmd *cobra.Command) webform.Form {
	get := func(name string) string {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return webform.Form{
		Name:    get("name"),
		Email:   get("email"),
		Phone:   get("phone"),
		Subject: get("subject"),
		Message: get("message"),
	}
}

func langFromFlags(cmd *cobra.Command) string {
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		return cliCfg.Lang
	}
	return lang
}
