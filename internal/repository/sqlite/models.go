package sqlite

import (
	"standeal-backend/internal/domain"
	"time"
)

type quoteRecord struct {
	ID               string `gorm:"primaryKey"`
	ClientName       string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	PickupLocation   string `gorm:"not null"`
	DeliveryLocation string `gorm:"not null"`
	CargoType        string `gorm:"not null"`
	CargoWeight      *float64
	CargoDimensions  string
	TransportType    string    `gorm:"not null"`
	Urgency          string    `gorm:"not null"`
	AdditionalInfo   string
	CreatedAt        time.Time `gorm:"index"`
}

func (quoteRecord) TableName() string { return "transport_quotes" }

func newQuoteRecord(q *domain.TransportQuote) *quoteRecord {
	return &quoteRecord{
		ID:               q.ID,
		ClientName:       q.ClientName,
		Email:            q.Email,
		Phone:            q.Phone,
		PickupLocation:   q.PickupLocation,
		DeliveryLocation: q.DeliveryLocation,
		CargoType:        q.CargoType,
		CargoWeight:      q.CargoWeight,
		CargoDimensions:  q.CargoDimensions,
		TransportType:    string(q.TransportType),
		Urgency:          string(q.Urgency),
		AdditionalInfo:   q.AdditionalInfo,
		CreatedAt:        q.Timestamp,
	}
}

func (r quoteRecord) toDomain() domain.TransportQuote {
	return domain.TransportQuote{
		ID: r.ID,
		QuoteRequest: domain.QuoteRequest{
			ClientName:       r.ClientName,
			Email:            r.Email,
			Phone:            r.Phone,
			PickupLocation:   r.PickupLocation,
			DeliveryLocation: r.DeliveryLocation,
			CargoType:        r.CargoType,
			CargoWeight:      r.CargoWeight,
			CargoDimensions:  r.CargoDimensions,
			TransportType:    domain.TransportType(r.TransportType),
			Urgency:          domain.Urgency(r.Urgency),
			AdditionalInfo:   r.AdditionalInfo,
		},
		Timestamp: r.CreatedAt.UTC(),
	}
}

type contactRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string
	Subject   string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (contactRecord) TableName() string { return "contact_messages" }

type statusRecord struct {
	ID         string `gorm:"primaryKey"`
	ClientName string `gorm:"not null"`
	CreatedAt  time.Time
}

func (statusRecord) TableName() string { return "status_checks" }
