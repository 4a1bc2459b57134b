package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/export"
	"standeal-backend/pkg/security"
	"standeal-backend/pkg/validation"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type quoteUsecase struct {
	repo      domain.QuoteRepository
	notifier  domain.LeadNotifier
	validate  *validator.Validate
	sanitizer *security.Sanitizer
	secLog    *security.SecurityLogger
	logger    *slog.Logger
}

// NewQuoteUsecase creates the transport quote intake usecase
func NewQuoteUsecase(
	repo domain.QuoteRepository,
	notifier domain.LeadNotifier,
	validate *validator.Validate,
	sanitizer *security.Sanitizer,
	secLog *security.SecurityLogger,
	logger *slog.Logger,
) domain.QuoteUsecase {
	return &quoteUsecase{
		repo:      repo,
		notifier:  notifier,
		validate:  validate,
		sanitizer: sanitizer,
		secLog:    secLog,
		logger:    logger,
	}
}

// SubmitQuote validates the request, stores it and hands it to the notifier.
// A notification failure is logged and never fails the submission.
func (u *quoteUsecase) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.TransportQuote, error) {
	if req == nil {
		return nil, apperror.BadRequest("Cererea de cotație lipsește")
	}
	clean := u.normalize(*req)

	if err := u.validate.Struct(clean); err != nil {
		problems := validation.FormatValidationErrors(err)
		u.secLog.LogValidationFailed(ctx, "quote", clean.Email, problems)
		return nil, apperror.BadRequest("Datele cererii de cotație sunt invalide").WithDetails(problems)
	}

	quote := &domain.TransportQuote{
		ID:           uuid.NewString(),
		QuoteRequest: clean,
		Timestamp:    time.Now().UTC(),
	}

	if err := u.repo.Create(ctx, quote); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Eroare la procesarea cererii de cotație", err)
	}
	u.secLog.LogLeadAccepted(ctx, "quote", quote.ID, quote.Email)

	if err := u.notifier.NotifyQuote(ctx, quote); err != nil {
		u.logger.Error("Failed to dispatch quote notifications", "quote_id", quote.ID, "error", err)
	}

	return quote, nil
}

func (u *quoteUsecase) normalize(req domain.QuoteRequest) domain.QuoteRequest {
	req.ClientName = u.sanitizer.Text(req.ClientName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.PickupLocation = u.sanitizer.Text(req.PickupLocation)
	req.DeliveryLocation = u.sanitizer.Text(req.DeliveryLocation)
	req.CargoType = u.sanitizer.Text(req.CargoType)
	req.CargoDimensions = u.sanitizer.Text(req.CargoDimensions)
	req.TransportType = domain.TransportType(strings.ToLower(strings.TrimSpace(string(req.TransportType))))
	req.Urgency = domain.Urgency(strings.ToLower(strings.TrimSpace(string(req.Urgency))))
	req.AdditionalInfo = u.sanitizer.Text(req.AdditionalInfo)
	return req
}

func (u *quoteUsecase) ListQuotes(ctx context.Context) ([]domain.TransportQuote, error) {
	quotes, err := u.repo.List(ctx, domain.MaxListLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return quotes, nil
}

func (u *quoteUsecase) ExportQuotes(ctx context.Context, w io.Writer) error {
	quotes, err := u.ListQuotes(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteQuotes(w, quotes); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
