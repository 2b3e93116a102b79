package port

import "context"

// Queue names shared between the scheduler and the workers.
const (
	QueueDailyMetrics = "metrics.daily"
	QueueInactivity   = "antifraud.inactivity"
)

// JobQueue publishes per-assignment units of work onto a durable queue
// consumed with at-least-once semantics. Payloads are JSON-encoded.
type JobQueue interface {
	Publish(ctx context.Context, queue string, payload any) error
}

// JobHandler processes one delivery. A nil return acks the message; an
// error discards it and relies on the next scheduled run to self-heal
// (every handler is idempotent).
type JobHandler func(ctx context.Context, body []byte) error

// JobConsumer binds a handler to a queue. Consume returns after the
// subscription is established; deliveries are dispatched on a background
// goroutine until ctx is cancelled.
type JobConsumer interface {
	Consume(ctx context.Context, queue string, handler JobHandler) error
}

// DailyMetricsJob asks a worker to roll up one assignment's previous day.
// Date is formatted YYYY-MM-DD.
type DailyMetricsJob struct {
	AssignmentID string `json:"assignment_id"`
	Date         string `json:"date"`
}

// InactivityJob asks a worker to check one assignment for telemetry
// silence.
type InactivityJob struct {
	AssignmentID string `json:"assignment_id"`
}
