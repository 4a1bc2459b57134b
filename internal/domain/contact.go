package domain

import (
	"context"
	"time"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,valid_phone"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactMessage is a persisted contact form submission
type ContactMessage struct {
	ID string `json:"id"`
	ContactRequest
	Timestamp time.Time `json:"timestamp"`
}

// ContactRepository persists contact messages
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, limit int) ([]ContactMessage, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates, stores and forwards a contact form message
	SubmitContact(ctx context.Context, req *ContactRequest) (*ContactMessage, error)
	ListMessages(ctx context.Context) ([]ContactMessage, error)
}
