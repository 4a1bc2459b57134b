package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"standeal-backend/internal/domain"
	"standeal-backend/pkg/email"
)

// DefaultSendTimeout bounds one background delivery run.
const DefaultSendTimeout = 30 * time.Second

// AsyncNotifier sends lead emails from a background goroutine in the API
// process. It is used when no Redis queue is configured.
type AsyncNotifier struct {
	mailer       email.Mailer
	companyEmail string
	timeout      time.Duration
	logger       *slog.Logger
	wg           sync.WaitGroup
}

func NewAsyncNotifier(mailer email.Mailer, companyEmail string, logger *slog.Logger) *AsyncNotifier {
	return &AsyncNotifier{
		mailer:       mailer,
		companyEmail: companyEmail,
		timeout:      DefaultSendTimeout,
		logger:       logger,
	}
}

// NotifyQuote renders synchronously and delivers in the background.
func (n *AsyncNotifier) NotifyQuote(ctx context.Context, quote *domain.TransportQuote) error {
	messages, err := quoteMessages(n.companyEmail, quote)
	if err != nil {
		return err
	}
	n.dispatch(quote.ID, messages)
	return nil
}

func (n *AsyncNotifier) NotifyContact(ctx context.Context, msg *domain.ContactMessage) error {
	messages, err := contactMessages(n.companyEmail, msg)
	if err != nil {
		return err
	}
	n.dispatch(msg.ID, messages)
	return nil
}

// The request context ends with the response, so delivery gets its own.
func (n *AsyncNotifier) dispatch(leadID string, messages []*email.Message) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		for _, msg := range messages {
			if err := n.mailer.Send(ctx, msg); err != nil {
				n.logger.Error("Failed to send lead email", "lead_id", leadID, "subject", msg.Subject, "error", err)
				continue
			}
			n.logger.Info("Lead email sent", "lead_id", leadID, "subject", msg.Subject)
		}
	}()
}

// Wait blocks until every pending delivery has finished.
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}
