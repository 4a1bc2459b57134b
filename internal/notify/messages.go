package notify

import (
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/email"
)

// quoteMessages returns the company notification followed by the client confirmation
func quoteMessages(companyEmail string, quote *domain.TransportQuote) ([]*email.Message, error) {
	notification, err := email.BuildQuoteNotification(companyEmail, quote)
	if err != nil {
		return nil, err
	}
	confirmation, err := email.BuildQuoteConfirmation(companyEmail, quote)
	if err != nil {
		return nil, err
	}
	return []*email.Message{notification, confirmation}, nil
}

func contactMessages(companyEmail string, msg *domain.ContactMessage) ([]*email.Message, error) {
	notification, err := email.BuildContactNotification(companyEmail, msg)
	if err != nil {
		return nil, err
	}
	return []*email.Message{notification}, nil
}
