package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/hrsuite/recruitment-service/internal/api/domain"
)

// TrendWindow is the trailing window for the daily application trend.
const TrendWindow = 7 * 24 * time.Hour

type StageCount struct {
	Stage string `db:"stage"`
	Count int    `db:"count"`
}

type DateCount struct {
	Date  time.Time `db:"date"`
	Count int       `db:"count"`
}

func (s *Storage) CountOpenJobs(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs WHERE status = $1`, domain.JobStatusOpen)
	if err != nil {
		return 0, fmt.Errorf("failed to count open jobs: %w", err)
	}
	return count, nil
}

func (s *Storage) CountApplications(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications`)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// StageDistribution returns per-stage application counts. Stages with no
// applications are absent; consumers fill in zeroes.
func (s *Storage) StageDistribution(ctx context.Context) ([]StageCount, error) {
	query := `
		SELECT stage, COUNT(*) AS count
		FROM applications
		GROUP BY stage
	`

	var counts []StageCount
	err := s.db.SelectContext(ctx, &counts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage distribution: %w", err)
	}

	return counts, nil
}

// ApplicationTrend returns per-day application counts for submissions with
// applied_at inside the trailing window ending at now, ordered ascending by
// date. Days with no applications are absent.
func (s *Storage) ApplicationTrend(ctx context.Context, now time.Time) ([]DateCount, error) {
	query := `
		SELECT DATE(applied_at) AS date, COUNT(*) AS count
		FROM applications
		WHERE applied_at >= $1
		GROUP BY DATE(applied_at)
		ORDER BY date ASC
	`

	var counts []DateCount
	err := s.db.SelectContext(ctx, &counts, query, now.Add(-TrendWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to get application trend: %w", err)
	}

	return counts, nil
}
