package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivead/internal/core/domain"
)

// PositionRepository implements port.PositionRepository using pgxpool.
// Positions are append-only; nothing here ever updates a row.
type PositionRepository struct {
	pool *pgxpool.Pool
}

// NewPositionRepository returns a new repository instance.
func NewPositionRepository(pool *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{pool: pool}
}

func (r *PositionRepository) lastWhere(ctx context.Context, where string, arg any) (*domain.Position, error) {
	var p domain.Position
	err := r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, driver_id, lat, lon, ts, speed
         FROM positions WHERE `+where+` ORDER BY ts DESC LIMIT 1`, arg,
	).Scan(&p.ID, &p.AssignmentID, &p.DriverID, &p.Lat, &p.Lon, &p.Ts, &p.Speed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LastByDriver returns the driver's most recent ping across assignments,
// or nil.
func (r *PositionRepository) LastByDriver(ctx context.Context, driverID uuid.UUID) (*domain.Position, error) {
	return r.lastWhere(ctx, `driver_id = $1`, driverID)
}

// LastByAssignment returns the assignment's most recent ping, or nil.
func (r *PositionRepository) LastByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Position, error) {
	return r.lastWhere(ctx, `assignment_id = $1`, assignmentID)
}

// BulkInsert appends the accepted points, dropping duplicate
// (assignment, ts) pairs, and returns the number actually inserted.
func (r *PositionRepository) BulkInsert(ctx context.Context, positions []domain.Position) (int64, error) {
	if len(positions) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, p := range positions {
		batch.Queue(
			`INSERT INTO positions (assignment_id, driver_id, lat, lon, ts, speed)
             VALUES ($1,$2,$3,$4,$5,$6)
             ON CONFLICT (assignment_id, ts) DO NOTHING`,
			p.AssignmentID, p.DriverID, p.Lat, p.Lon, p.Ts, p.Speed)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range positions {
		tag, err := results.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// ListForDay returns the assignment's pings with ts in [day, day+24h)
// ordered by ts ascending.
func (r *PositionRepository) ListForDay(ctx context.Context, assignmentID uuid.UUID, day time.Time) ([]domain.Position, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, driver_id, lat, lon, ts, speed
         FROM positions
         WHERE assignment_id = $1 AND ts >= $2 AND ts < $3
         ORDER BY ts`,
		assignmentID, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Position, error) {
		var p domain.Position
		err := row.Scan(&p.ID, &p.AssignmentID, &p.DriverID, &p.Lat, &p.Lon, &p.Ts, &p.Speed)
		return p, err
	})
}
