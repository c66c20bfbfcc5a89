package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hrsuite/recruitment-service/internal/screening"
	"github.com/hrsuite/recruitment-service/internal/worker/domain"
	"github.com/hrsuite/recruitment-service/internal/worker/storage"
	"github.com/hrsuite/recruitment-service/shared/postgresql"
	"github.com/hrsuite/recruitment-service/shared/rabbitmq"
)

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Forwarder     *screening.Forwarder
	Concurrency   int
	PrefetchCount int
}

// Worker consumes screening messages and forwards applications to the AI
// scoring endpoint.
type Worker struct {
	logger        *slog.Logger
	rabbitClient  *rabbitmq.Client
	storage       *storage.Storage
	forwarder     *screening.Forwarder
	concurrency   int
	prefetchCount int
	workerID      string
	messagesChan  chan *domain.ScreeningMessage
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		rabbitClient:  cfg.RabbitClient,
		storage:       storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		forwarder:     cfg.Forwarder,
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		workerID:      fmt.Sprintf("screening-worker-%s", uuid.New().String()[:8]),
		messagesChan:  make(chan *domain.ScreeningMessage),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming and forwarding screening requests. Blocks until
// the context is canceled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting screening worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
	)

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)
	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping screening worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Screening worker stopped")
}
