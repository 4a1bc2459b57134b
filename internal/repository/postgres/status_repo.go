package postgres

import (
	"context"
	"standeal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statusRepo struct {
	db *pgxpool.Pool
}

func NewStatusRepository(db *pgxpool.Pool) domain.StatusRepository {
	return &statusRepo{db: db}
}

func (r *statusRepo) Create(ctx context.Context, check *domain.StatusCheck) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	return err
}

func (r *statusRepo) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_name, created_at FROM status_checks ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make([]domain.StatusCheck, 0)
	for rows.Next() {
		var s domain.StatusCheck
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, s)
	}
	return checks, rows.Err()
}
