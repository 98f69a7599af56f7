package services

import (
	"fmt"
	"net/smtp"

	"github.com/hbc-community/community-backend/internal/config"
)

// Mailer sends transactional email to a single recipient.
type Mailer interface {
	SendMail(to, subject, htmlBody, displayName string) error
}

// SMTPMailer delivers mail through an authenticated SMTP submission
// endpoint. The configured EmailUser is both the login and the From
// address (Gmail app-password style).
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

// NewSMTPMailer creates a mailer from the loaded configuration
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.EmailUser,
		password: cfg.EmailPass,
	}
}

func (m *SMTPMailer) SendMail(to, subject, htmlBody, displayName string) error {
	msg := m.message(to, subject, htmlBody, displayName)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.password != "" {
		auth = smtp.PlainAuth("", m.from, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) message(to, subject, htmlBody, displayName string) []byte {
	from := m.from
	if displayName != "" {
		from = fmt.Sprintf("%q <%s>", displayName, m.from)
	}

	msg := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n%s", from, to, subject, htmlBody)

	return []byte(msg)
}
