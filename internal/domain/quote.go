package domain

import (
	"context"
	"io"
	"time"
)

type TransportType string

const (
	TransportNational      TransportType = "national"
	TransportInternational TransportType = "international"
)

type Urgency string

const (
	UrgencyNormal  Urgency = "normal"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyExpress Urgency = "express"
)

// QuoteRequest is the transport quote form as submitted by a prospective client.
// CargoWeight is a JSON number or null, never an empty string.
type QuoteRequest struct {
	ClientName       string        `json:"client_name" validate:"required,max=120"`
	Email            string        `json:"email" validate:"required,email,max=255"`
	Phone            string        `json:"phone" validate:"required,valid_phone"`
	PickupLocation   string        `json:"pickup_location" validate:"required,max=200"`
	DeliveryLocation string        `json:"delivery_location" validate:"required,max=200"`
	CargoType        string        `json:"cargo_type" validate:"required,max=120"`
	CargoWeight      *float64      `json:"cargo_weight" validate:"omitempty,gte=0"`
	CargoDimensions  string        `json:"cargo_dimensions" validate:"max=200"`
	TransportType    TransportType `json:"transport_type" validate:"required,oneof=national international"`
	Urgency          Urgency       `json:"urgency" validate:"required,oneof=normal urgent express"`
	AdditionalInfo   string        `json:"additional_info" validate:"max=2000"`
}

// TransportQuote is a persisted quote request
type TransportQuote struct {
	ID string `json:"id"`
	QuoteRequest
	Timestamp time.Time `json:"timestamp"`
}

// QuoteRepository persists transport quotes
type QuoteRepository interface {
	Create(ctx context.Context, quote *TransportQuote) error
	// List returns at most limit quotes, newest first
	List(ctx context.Context, limit int) ([]TransportQuote, error)
}

// QuoteUsecase defines the transport quote intake operations
type QuoteUsecase interface {
	// SubmitQuote validates, stores and dispatches notifications for a quote request
	SubmitQuote(ctx context.Context, req *QuoteRequest) (*TransportQuote, error)
	ListQuotes(ctx context.Context) ([]TransportQuote, error)
	// ExportQuotes writes the stored quotes as an XLSX workbook
	ExportQuotes(ctx context.Context, w io.Writer) error
}
