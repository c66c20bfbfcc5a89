package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrsuite/recruitment-service/internal/screening"
	"github.com/hrsuite/recruitment-service/internal/worker/domain"
)

// processMessage forwards one application to the AI scoring endpoint.
// Forwarding errors are logged and swallowed: there is no retry and no
// write-back to the application record, whatever the outcome. An error is
// returned only when the message cannot be acted on at all.
func (w *Worker) processMessage(ctx context.Context, msg *domain.ScreeningMessage) error {
	w.logger.Info("Processing screening message",
		slog.String("application_id", msg.ApplicationID),
		slog.String("worker_id", w.workerID),
	)

	target, err := w.storage.GetScreeningTarget(ctx, msg.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			w.logger.Warn("Application behind screening message not found",
				slog.String("application_id", msg.ApplicationID),
			)
			return fmt.Errorf("application not found: %w", err)
		}
		return fmt.Errorf("failed to load screening target: %w", err)
	}

	sub := &screening.Submission{
		ApplicationID:  target.ApplicationID,
		Name:           target.FullName,
		Email:          target.Email,
		JobDescription: target.JobDescription.String,
		ResumePath:     target.ResumePath.String,
		ResumeURL:      target.ResumeURL.String,
	}

	if err := w.forwarder.Forward(ctx, sub); err != nil {
		// Fail soft: the scorer is best effort and the intake already
		// succeeded
		w.logger.Error("Failed to forward application to AI agent",
			slog.String("application_id", msg.ApplicationID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return nil
}
