package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"drivead/internal/core/domain"
)

// MetricRepository implements port.MetricRepository using pgxpool.
type MetricRepository struct {
	pool *pgxpool.Pool
}

// NewMetricRepository returns a new repository instance.
func NewMetricRepository(pool *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{pool: pool}
}

// Upsert overwrites the (assignment, day) rollup. Re-running a day writes
// the same values instead of accumulating.
func (r *MetricRepository) Upsert(ctx context.Context, m domain.DailyMetric) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO daily_metrics (assignment_id, day, kilometers_driven, time_in_motion_seconds)
         VALUES ($1,$2,$3,$4)
         ON CONFLICT (assignment_id, day) DO UPDATE
         SET kilometers_driven = EXCLUDED.kilometers_driven,
             time_in_motion_seconds = EXCLUDED.time_in_motion_seconds`,
		m.AssignmentID, m.Day, m.KilometersDriven, m.TimeInMotionSeconds)
	return err
}
