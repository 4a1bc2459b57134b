package usecase

import (
	"context"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/validation"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type statusUsecase struct {
	repo     domain.StatusRepository
	validate *validator.Validate
}

func NewStatusUsecase(repo domain.StatusRepository, validate *validator.Validate) domain.StatusUsecase {
	return &statusUsecase{repo: repo, validate: validate}
}

func (u *statusUsecase) RecordStatus(ctx context.Context, req *domain.StatusCheckRequest) (*domain.StatusCheck, error) {
	if req == nil {
		return nil, apperror.BadRequest("Date invalide")
	}
	clean := domain.StatusCheckRequest{ClientName: strings.TrimSpace(req.ClientName)}
	if err := u.validate.Struct(clean); err != nil {
		return nil, apperror.BadRequest("Date invalide").WithDetails(validation.FormatValidationErrors(err))
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clean.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, check); err != nil {
		return nil, apperror.Internal(err)
	}
	return check, nil
}

func (u *statusUsecase) ListStatus(ctx context.Context) ([]domain.StatusCheck, error) {
	checks, err := u.repo.List(ctx, domain.MaxListLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return checks, nil
}
