package email

import (
	"context"
	"fmt"
	"net/smtp"

	"blog-backend/pkg/logger"
)

// ContactMessage is a submitted contact-form entry.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service delivers contact-form messages to the configured recipient.
type Service interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

type smtpService struct {
	addr      string
	auth      smtp.Auth
	from      string
	recipient string
}

// NewSMTPService builds a Service submitting over authenticated SMTP.
// Leave username empty for an unauthenticated dev relay (mailhog etc.).
func NewSMTPService(host, port, username, password, from, recipient string) Service {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &smtpService{
		addr:      host + ":" + port,
		auth:      auth,
		from:      from,
		recipient: recipient,
	}
}

func (s *smtpService) SendContactMessage(ctx context.Context, m ContactMessage) error {
	subject := "New contact form message from " + m.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		m.Name, m.Email, m.Phone, m.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, s.recipient, subject, body))

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{s.recipient}, msg); err != nil {
		// The wrapped error stays server-side; handlers must surface only
		// a generic failure so SMTP details never leak to the submitter.
		logger.Error("failed to send contact message", err)
		return fmt.Errorf("send contact message: %w", err)
	}

	return nil
}
