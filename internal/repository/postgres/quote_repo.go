package postgres

import (
	"context"
	"standeal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type quoteRepo struct {
	db *pgxpool.Pool
}

// NewQuoteRepository creates a new transport quote repository
func NewQuoteRepository(db *pgxpool.Pool) domain.QuoteRepository {
	return &quoteRepo{db: db}
}

// Create stores a quote; ID and Timestamp are assigned by the caller
func (r *quoteRepo) Create(ctx context.Context, quote *domain.TransportQuote) error {
	query := `
		INSERT INTO transport_quotes (
			id, client_name, email, phone, pickup_location, delivery_location,
			cargo_type, cargo_weight, cargo_dimensions, transport_type, urgency,
			additional_info, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		quote.ID, quote.ClientName, quote.Email, quote.Phone, quote.PickupLocation, quote.DeliveryLocation,
		quote.CargoType, quote.CargoWeight, quote.CargoDimensions, string(quote.TransportType), string(quote.Urgency),
		quote.AdditionalInfo, quote.Timestamp,
	)
	return err
}

// List returns the newest quotes first
func (r *quoteRepo) List(ctx context.Context, limit int) ([]domain.TransportQuote, error) {
	query := `
		SELECT id, client_name, email, phone, pickup_location, delivery_location,
		       cargo_type, cargo_weight, cargo_dimensions, transport_type, urgency,
		       additional_info, created_at
		FROM transport_quotes
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]domain.TransportQuote, 0)
	for rows.Next() {
		var q domain.TransportQuote
		var transportType, urgency string
		if err := rows.Scan(
			&q.ID, &q.ClientName, &q.Email, &q.Phone, &q.PickupLocation, &q.DeliveryLocation,
			&q.CargoType, &q.CargoWeight, &q.CargoDimensions, &transportType, &urgency,
			&q.AdditionalInfo, &q.Timestamp,
		); err != nil {
			return nil, err
		}
		q.TransportType = domain.TransportType(transportType)
		q.Urgency = domain.Urgency(urgency)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
