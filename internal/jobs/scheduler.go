package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"drivead/internal/config/configs"
	"drivead/internal/core/port"
)

// Scheduler drives the recurring duties on cron cadences: daily metrics
// fan-out, hourly inactivity fan-out, midnight lifecycle sweep (cycle
// completion and campaign expiration) and the midday random proof draw.
type Scheduler struct {
	cron   *cron.Cron
	jobs   port.JobsUseCase
	logger *slog.Logger
}

// NewScheduler registers every duty against its configured cron
// expression. Expressions are validated at registration; a bad one is a
// startup error, not a silent no-op.
func NewScheduler(cfg configs.Jobs, jobs port.JobsUseCase, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		logger: logger,
	}

	specs := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{"daily_metrics", cfg.MetricsCron, func(ctx context.Context) error {
			return jobs.EnqueueDailyMetrics(ctx, time.Now())
		}},
		{"inactivity", cfg.InactivityCron, jobs.EnqueueInactivityChecks},
		{"lifecycle", cfg.LifecycleCron, s.runLifecycle},
		{"random_draw", cfg.RandomDrawCron, jobs.DrawRandomProofs},
	}
	for _, job := range specs {
		job := job
		_, err := s.cron.AddFunc(job.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := job.run(ctx); err != nil {
				logger.Error("scheduled job failed", slog.String("job", job.name), slog.Any("error", err))
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// runLifecycle completes elapsed cycles first so an assignment whose cycle
// and campaign end the same night gets its final proof raised exactly once.
func (s *Scheduler) runLifecycle(ctx context.Context) error {
	now := time.Now()
	if err := s.jobs.CompleteCycles(ctx, now); err != nil {
		s.logger.Error("cycle completion failed", slog.Any("error", err))
	}
	return s.jobs.ExpireCampaigns(ctx, now)
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
