package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hrsuite/recruitment-service/internal/worker/domain"
	"github.com/jmoiron/sqlx"
)

// Storage handles all database operations for the screening worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// GetScreeningTarget loads the application and its job description in one
// query. The job side is a LEFT JOIN: a dangling job reference still yields
// a target, the forwarder falls back to a placeholder description.
func (s *Storage) GetScreeningTarget(ctx context.Context, applicationID string) (*domain.ScreeningTarget, error) {
	query := `
		SELECT
			a.id, a.full_name, a.email, a.resume_path, a.resume_url,
			j.description AS job_description
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1
	`

	var target domain.ScreeningTarget
	err := s.db.GetContext(ctx, &target, query, applicationID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get screening target: %w", err)
	}

	return &target, nil
}
