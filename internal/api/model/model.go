package model

import (
	"database/sql"
	"time"
)

type Job struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Department  sql.NullString `db:"department"`
	Location    sql.NullString `db:"location"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type Application struct {
	ID              string         `db:"id"`
	JobID           string         `db:"job_id"`
	FullName        string         `db:"full_name"`
	Email           string         `db:"email"`
	Phone           sql.NullString `db:"phone"`
	ResumePath      sql.NullString `db:"resume_path"`
	ResumeURL       sql.NullString `db:"resume_url"`
	Stage           string         `db:"stage"`
	AppliedAt       time.Time      `db:"applied_at"`
	HiredEmployeeID sql.NullString `db:"hired_employee_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`

	// JobTitle is populated on reads that join the jobs table.
	JobTitle sql.NullString `db:"job_title"`
}

// NullString maps the empty string to SQL NULL so optional form fields
// are stored as "unset" rather than "".
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
