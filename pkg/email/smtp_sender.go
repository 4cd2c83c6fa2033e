package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender implements Sender through a plain SMTP relay, the transport
// the notification feature was designed for.
type SMTPSender struct {
	dialer    *gomail.Dialer
	fromEmail string
}

// NewSMTPSender configures a sender for the given relay. Credentials may
// be empty for relays that accept unauthenticated submission.
func NewSMTPSender(host string, port int, username, password, fromEmail string) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}
}

// Send makes a single dial-and-send attempt. No retry, no queue:
// a failure surfaces to the caller and a re-click is the only recourse.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject, plainTextContent, htmlContent string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.fromEmail)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainTextContent)
	if htmlContent != "" {
		m.AddAlternative("text/html", htmlContent)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
