package domain

import (
	"context"
	"time"
)

type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,max=120"`
}

// StatusCheck records that a client pinged the API
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusRepository interface {
	Create(ctx context.Context, check *StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}

type StatusUsecase interface {
	RecordStatus(ctx context.Context, req *StatusCheckRequest) (*StatusCheck, error)
	ListStatus(ctx context.Context) ([]StatusCheck, error)
}
