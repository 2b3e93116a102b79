package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"drivead/internal/core/port"
)

// Workers binds the queue consumers that execute the per-assignment units
// of work published by the scheduler.
type Workers struct {
	consumer port.JobConsumer
	jobs     port.JobsUseCase
	logger   *slog.Logger
}

func NewWorkers(consumer port.JobConsumer, jobs port.JobsUseCase, logger *slog.Logger) *Workers {
	return &Workers{consumer: consumer, jobs: jobs, logger: logger}
}

// Start subscribes to both work queues. Handlers run until ctx is
// cancelled.
func (w *Workers) Start(ctx context.Context) error {
	if err := w.consumer.Consume(ctx, port.QueueDailyMetrics, w.handleDailyMetrics); err != nil {
		return fmt.Errorf("consume %s: %w", port.QueueDailyMetrics, err)
	}
	if err := w.consumer.Consume(ctx, port.QueueInactivity, w.handleInactivity); err != nil {
		return fmt.Errorf("consume %s: %w", port.QueueInactivity, err)
	}
	return nil
}

func (w *Workers) handleDailyMetrics(ctx context.Context, body []byte) error {
	var job port.DailyMetricsJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.Error("malformed daily metrics job", slog.Any("error", err))
		return nil // unparseable, redelivery cannot help
	}
	id, err := uuid.Parse(job.AssignmentID)
	if err != nil {
		w.logger.Error("daily metrics job with bad assignment id", slog.String("assignment_id", job.AssignmentID))
		return nil
	}
	day, err := time.Parse(time.DateOnly, job.Date)
	if err != nil {
		w.logger.Error("daily metrics job with bad date", slog.String("date", job.Date))
		return nil
	}
	return w.jobs.CalculateDailyMetrics(ctx, id, day)
}

func (w *Workers) handleInactivity(ctx context.Context, body []byte) error {
	var job port.InactivityJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.Error("malformed inactivity job", slog.Any("error", err))
		return nil
	}
	id, err := uuid.Parse(job.AssignmentID)
	if err != nil {
		w.logger.Error("inactivity job with bad assignment id", slog.String("assignment_id", job.AssignmentID))
		return nil
	}
	return w.jobs.CheckInactivity(ctx, id)
}
