package handler

import (
	"context"
	"log/slog"

	"github.com/hrsuite/recruitment-service/internal/api/storage"
	"github.com/hrsuite/recruitment-service/internal/calendar"
)

// Publisher dispatches screening messages to the broker. Satisfied by
// shared/rabbitmq.Client.
type Publisher interface {
	PublishWithRetry(ctx context.Context, body []byte, contentType string) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger     *slog.Logger
	Storage    *storage.Storage
	Publisher  Publisher
	Scheduler  calendar.Scheduler
	UploadsDir string
}

// JobHandler handles job administration HTTP requests
type JobHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ApplicationHandler handles application intake and pipeline requests
type ApplicationHandler struct {
	logger     *slog.Logger
	storage    *storage.Storage
	publisher  Publisher
	uploadsDir string
}

func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger:     deps.Logger,
		storage:    deps.Storage,
		publisher:  deps.Publisher,
		uploadsDir: deps.UploadsDir,
	}
}

// InterviewHandler handles interview scheduling requests
type InterviewHandler struct {
	logger    *slog.Logger
	storage   *storage.Storage
	scheduler calendar.Scheduler
}

func NewInterviewHandler(deps *Dependencies) *InterviewHandler {
	return &InterviewHandler{
		logger:    deps.Logger,
		storage:   deps.Storage,
		scheduler: deps.Scheduler,
	}
}

// StatsHandler serves the recruitment dashboard aggregates
type StatsHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

func NewStatsHandler(deps *Dependencies) *StatsHandler {
	return &StatsHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}
