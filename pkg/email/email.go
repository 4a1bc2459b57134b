package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"standeal-backend/config"
	"strings"
)

// Message is a single outgoing email
type Message struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Mailer delivers messages through a concrete provider
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// NewMailer picks the provider from configuration: Resend when an API key is
// present, SMTP when fully configured, otherwise a mailer that only logs.
func NewMailer(cfg *config.Config, logger *slog.Logger) Mailer {
	if cfg.ResendAPIKey != "" {
		return NewResendMailer(cfg.ResendAPIKey, cfg.SMTPFromEmail)
	}
	smtpMailer := NewSMTPMailer(cfg)
	if smtpMailer.IsConfigured() {
		return smtpMailer
	}
	logger.Warn("Email delivery not configured - notifications will only be logged")
	return NewLogMailer(logger)
}

// SMTPMailer handles sending emails via SMTP
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	sendMail  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a new SMTP mailer from configuration
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		sendMail:  smtp.SendMail,
	}
}

// Send delivers the message as a single HTML MIME part
func (s *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	headers := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n",
		s.fromEmail,
		strings.Join(msg.To, ", "),
	)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	raw := []byte(headers + fmt.Sprintf(
		"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.Subject,
		msg.HTMLBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.sendMail(addr, auth, s.fromEmail, msg.To, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (s *SMTPMailer) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// LogMailer writes messages to the log instead of delivering them
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	m.logger.Info("Email not delivered (no provider configured)",
		"to", strings.Join(msg.To, ","),
		"subject", msg.Subject,
		"body_bytes", len(msg.HTMLBody),
	)
	return nil
}
