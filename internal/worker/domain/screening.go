package domain

import (
	"database/sql"
	"errors"
)

var (
	// ErrApplicationNotFound is returned when the application behind a
	// screening message no longer exists
	ErrApplicationNotFound = errors.New("application not found")
)

// ScreeningMessage is the broker message published at intake
type ScreeningMessage struct {
	ApplicationID string `json:"application_id"`
	DeliveryTag   uint64 `json:"-"`
}

// ScreeningTarget is the application plus job context needed to build a
// screening submission. Read-only: forwarding never writes back.
type ScreeningTarget struct {
	ApplicationID  string         `db:"id"`
	FullName       string         `db:"full_name"`
	Email          string         `db:"email"`
	ResumePath     sql.NullString `db:"resume_path"`
	ResumeURL      sql.NullString `db:"resume_url"`
	JobDescription sql.NullString `db:"job_description"`
}
