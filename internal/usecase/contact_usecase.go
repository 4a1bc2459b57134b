package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/security"
	"standeal-backend/pkg/validation"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type contactUsecase struct {
	repo      domain.ContactRepository
	notifier  domain.LeadNotifier
	validate  *validator.Validate
	sanitizer *security.Sanitizer
	secLog    *security.SecurityLogger
	logger    *slog.Logger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(
	repo domain.ContactRepository,
	notifier domain.LeadNotifier,
	validate *validator.Validate,
	sanitizer *security.Sanitizer,
	secLog *security.SecurityLogger,
	logger *slog.Logger,
) domain.ContactUsecase {
	return &contactUsecase{
		repo:      repo,
		notifier:  notifier,
		validate:  validate,
		sanitizer: sanitizer,
		secLog:    secLog,
		logger:    logger,
	}
}

// SubmitContact validates the contact request, stores it and forwards it to the company inbox
func (u *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (*domain.ContactMessage, error) {
	if req == nil {
		return nil, apperror.BadRequest("Mesajul lipsește")
	}
	clean := domain.ContactRequest{
		Name:    u.sanitizer.Text(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: u.sanitizer.Text(req.Subject),
		Message: u.sanitizer.Text(req.Message),
	}

	if err := u.validate.Struct(clean); err != nil {
		problems := validation.FormatValidationErrors(err)
		u.secLog.LogValidationFailed(ctx, "contact", clean.Email, problems)
		return nil, apperror.BadRequest("Datele mesajului sunt invalide").WithDetails(problems)
	}

	msg := &domain.ContactMessage{
		ID:             uuid.NewString(),
		ContactRequest: clean,
		Timestamp:      time.Now().UTC(),
	}

	if err := u.repo.Create(ctx, msg); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Eroare la trimiterea mesajului", err)
	}
	u.secLog.LogLeadAccepted(ctx, "contact", msg.ID, msg.Email)

	if err := u.notifier.NotifyContact(ctx, msg); err != nil {
		u.logger.Error("Failed to dispatch contact notification", "message_id", msg.ID, "error", err)
	}

	return msg, nil
}

func (u *contactUsecase) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := u.repo.List(ctx, domain.MaxListLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}
