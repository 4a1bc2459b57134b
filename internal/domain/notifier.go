package domain

import "context"

// LeadNotifier delivers the emails that follow a lead submission.
// Implementations must not block the intake request on email delivery.
type LeadNotifier interface {
	NotifyQuote(ctx context.Context, quote *TransportQuote) error
	NotifyContact(ctx context.Context, msg *ContactMessage) error
}
