package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends email through the Resend API
type ResendMailer struct {
	client    *resend.Client
	fromEmail string
}

func NewResendMailer(apiKey, fromEmail string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg *Message) error {
	params := &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		ReplyTo: msg.ReplyTo,
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via resend: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend returned no message id")
	}
	return nil
}
