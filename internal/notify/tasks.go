package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"standeal-backend/pkg/email"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue lead emails are enqueued on.
	QueueDefault = "default"
	// TaskTypeLeadEmail is the task type for a single lead notification email.
	TaskTypeLeadEmail = "lead:email"
	// MaxRetry bounds redelivery of a failed email.
	MaxRetry = 3
)

// LeadEmailPayload describes one rendered email waiting for delivery.
type LeadEmailPayload struct {
	LeadID   string   `json:"lead_id"`
	To       []string `json:"to"`
	ReplyTo  string   `json:"reply_to,omitempty"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
}

// Message converts the payload back into a mailer message.
func (p LeadEmailPayload) Message() *email.Message {
	return &email.Message{
		To:       p.To,
		ReplyTo:  p.ReplyTo,
		Subject:  p.Subject,
		HTMLBody: p.HTMLBody,
	}
}

// NewLeadEmailTask constructs an Asynq task.
func NewLeadEmailTask(leadID string, msg *email.Message) (*asynq.Task, error) {
	data, err := json.Marshal(LeadEmailPayload{
		LeadID:   leadID,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeLeadEmail, data), nil
}

// EmailHandler processes TaskTypeLeadEmail tasks.
type EmailHandler struct {
	mailer email.Mailer
	logger *slog.Logger
}

func NewEmailHandler(mailer email.Mailer, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{mailer: mailer, logger: logger}
}

// ProcessTask sends the email; a malformed payload is never retried.
func (h *EmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload LeadEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("Dropping malformed lead email task", "error", err)
		return fmt.Errorf("decode lead email payload: %w", asynq.SkipRetry)
	}
	if len(payload.To) == 0 {
		h.logger.Error("Dropping lead email task without recipients", "lead_id", payload.LeadID)
		return fmt.Errorf("lead email has no recipients: %w", asynq.SkipRetry)
	}

	if err := h.mailer.Send(ctx, payload.Message()); err != nil {
		h.logger.Error("Failed to send lead email", "lead_id", payload.LeadID, "subject", payload.Subject, "error", err)
		return err
	}
	h.logger.Info("Lead email sent", "lead_id", payload.LeadID, "subject", payload.Subject)
	return nil
}
