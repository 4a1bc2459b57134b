package notify

import (
	"context"
	"fmt"
	"log/slog"

	"standeal-backend/internal/domain"
	"standeal-backend/pkg/email"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier renders lead emails and hands them to the worker through Redis.
type QueueNotifier struct {
	queue        Enqueuer
	companyEmail string
	logger       *slog.Logger
}

func NewQueueNotifier(queue Enqueuer, companyEmail string, logger *slog.Logger) *QueueNotifier {
	return &QueueNotifier{queue: queue, companyEmail: companyEmail, logger: logger}
}

func (n *QueueNotifier) NotifyQuote(ctx context.Context, quote *domain.TransportQuote) error {
	messages, err := quoteMessages(n.companyEmail, quote)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, quote.ID, messages)
}

func (n *QueueNotifier) NotifyContact(ctx context.Context, msg *domain.ContactMessage) error {
	messages, err := contactMessages(n.companyEmail, msg)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, msg.ID, messages)
}

func (n *QueueNotifier) enqueue(ctx context.Context, leadID string, messages []*email.Message) error {
	for _, msg := range messages {
		task, err := NewLeadEmailTask(leadID, msg)
		if err != nil {
			return err
		}
		info, err := n.queue.EnqueueContext(ctx, task, asynq.Queue(QueueDefault), asynq.MaxRetry(MaxRetry))
		if err != nil {
			return fmt.Errorf("enqueue lead email: %w", err)
		}
		n.logger.Debug("Lead email enqueued", "lead_id", leadID, "task_id", info.ID)
	}
	return nil
}
