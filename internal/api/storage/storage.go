package storage

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Cursor is a keyset pagination position over (created_at, id).
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

type JobFilter struct {
	Status   string
	PageSize int
	Cursor   *Cursor
}

type ApplicationFilter struct {
	JobID    string
	Stage    string
	PageSize int
	Cursor   *Cursor
}
