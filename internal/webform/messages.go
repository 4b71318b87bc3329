package webform

import "github.com/menyentuh/website/internal/contact"

type statusMessages struct {
	Sending string
	Success string
	Failed  string
}

var messages = map[string]statusMessages{
	contact.LangNL: {
		Sending: "Bezig met verzenden...",
		Success: "Bedankt! Je bericht is verzonden. We nemen zo snel mogelijk contact met je op.",
		Failed:  "Er ging iets mis bij het verzenden. Probeer het later opnieuw of stuur ons een WhatsApp-bericht.",
	},
	contact.LangEN: {
		Sending: "Sending...",
		Success: "Thank you! Your message has been sent. We will get back to you as soon as possible.",
		Failed:  "Something went wrong while sending. Please try again later or send us a WhatsApp message.",
	},
}

func messagesFor(lang string) statusMessages {
	return messages[contact.NormalizeLang(lang)]
}
