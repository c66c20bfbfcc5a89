package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrsuite/recruitment-service/internal/api/domain"
	"github.com/hrsuite/recruitment-service/internal/api/model"
)

func (s *Storage) CreateApplication(ctx context.Context, app *model.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, full_name, email, phone,
			resume_path, resume_url, stage, applied_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		app.ID,
		app.JobID,
		app.FullName,
		app.Email,
		app.Phone,
		app.ResumePath,
		app.ResumeURL,
		app.Stage,
		app.AppliedAt,
		app.CreatedAt,
		app.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, appID string) (*model.Application, error) {
	var app model.Application
	query := `
		SELECT
			a.id, a.job_id, a.full_name, a.email, a.phone,
			a.resume_path, a.resume_url, a.stage, a.applied_at,
			a.hired_employee_id, a.created_at, a.updated_at,
			j.title AS job_title
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1
	`

	err := s.db.GetContext(ctx, &app, query, appID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

func (s *Storage) ListApplications(ctx context.Context, filter ApplicationFilter) ([]model.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.full_name, a.email, a.phone,
			a.resume_path, a.resume_url, a.stage, a.applied_at,
			a.hired_employee_id, a.created_at, a.updated_at,
			j.title AS job_title
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.JobID != "" {
		query += fmt.Sprintf(" AND a.job_id = $%d", argIdx)
		args = append(args, filter.JobID)
		argIdx++
	}

	if filter.Stage != "" {
		query += fmt.Sprintf(" AND a.stage = $%d", argIdx)
		args = append(args, filter.Stage)
		argIdx++
	}

	if filter.Cursor != nil {
		query += fmt.Sprintf(" AND (a.created_at, a.id) < ($%d, $%d)", argIdx, argIdx+1)
		args = append(args, filter.Cursor.CreatedAt, filter.Cursor.ID)
		argIdx += 2
	}

	query += " ORDER BY a.created_at DESC, a.id DESC"

	// Fetch one extra to determine if there are more results
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, filter.PageSize+1)

	var apps []model.Application
	err := s.db.SelectContext(ctx, &apps, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// UpdateApplicationStage sets the pipeline stage and, when hiredEmployeeID
// is valid, the hired-employee reference. The job reference is immutable.
func (s *Storage) UpdateApplicationStage(ctx context.Context, appID, stage string, hiredEmployeeID sql.NullString) error {
	query := `
		UPDATE applications
		SET stage = $1,
		    hired_employee_id = COALESCE($2, hired_employee_id),
		    updated_at = NOW()
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, stage, hiredEmployeeID, appID)
	if err != nil {
		return fmt.Errorf("failed to update application stage: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}

	return nil
}
