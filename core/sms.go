package core

import "strings"

type (
	// TextMessage is a single-line alert to be delivered over the short-text channel.
	TextMessage struct {
		To   string // phone number
		Body string
	}

	// SMSService is any service that can send short texts.
	// Delivery is best-effort: implementations log failures and never surface them.
	SMSService interface {
		// SendTexts sends texts concurrently
		SendTexts(texts ...*TextMessage)
	}
)

func (t *TextMessage) HasRecipient() bool { return strings.TrimSpace(t.To) != "" }
func (t *TextMessage) HasContent() bool   { return t.Body != "" }
