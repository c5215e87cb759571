package core

import "net/mail"

type (
	// EmailMessage is a plain-text email to be delivered over the message channel.
	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Subject string
		BodyStr string

		TextContent string // rendered content
	}

	// EmailService is any service that can send emails.
	// Delivery is best-effort: implementations log failures and never surface them.
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func (m *EmailMessage) Render() error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
	}
	return nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.TextContent != "" }
