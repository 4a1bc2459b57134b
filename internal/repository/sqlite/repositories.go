package sqlite

import (
	"context"
	"standeal-backend/internal/domain"

	"gorm.io/gorm"
)

type quoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) domain.QuoteRepository {
	return &quoteRepo{db: db}
}

func (r *quoteRepo) Create(ctx context.Context, quote *domain.TransportQuote) error {
	return r.db.WithContext(ctx).Create(newQuoteRecord(quote)).Error
}

func (r *quoteRepo) List(ctx context.Context, limit int) ([]domain.TransportQuote, error) {
	var records []quoteRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	quotes := make([]domain.TransportQuote, 0, len(records))
	for _, rec := range records {
		quotes = append(quotes, rec.toDomain())
	}
	return quotes, nil
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(&contactRecord{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.Timestamp,
	}).Error
}

func (r *contactRepo) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	var records []contactRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	messages := make([]domain.ContactMessage, 0, len(records))
	for _, rec := range records {
		messages = append(messages, domain.ContactMessage{
			ID: rec.ID,
			ContactRequest: domain.ContactRequest{
				Name:    rec.Name,
				Email:   rec.Email,
				Phone:   rec.Phone,
				Subject: rec.Subject,
				Message: rec.Message,
			},
			Timestamp: rec.CreatedAt.UTC(),
		})
	}
	return messages, nil
}

type statusRepo struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) domain.StatusRepository {
	return &statusRepo{db: db}
}

func (r *statusRepo) Create(ctx context.Context, check *domain.StatusCheck) error {
	return r.db.WithContext(ctx).Create(&statusRecord{
		ID:         check.ID,
		ClientName: check.ClientName,
		CreatedAt:  check.Timestamp,
	}).Error
}

func (r *statusRepo) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	var records []statusRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	checks := make([]domain.StatusCheck, 0, len(records))
	for _, rec := range records {
		checks = append(checks, domain.StatusCheck{ID: rec.ID, ClientName: rec.ClientName, Timestamp: rec.CreatedAt.UTC()})
	}
	return checks, nil
}
