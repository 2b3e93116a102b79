package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

// FraudAlertRepository implements port.FraudAlertRepository using pgxpool.
type FraudAlertRepository struct {
	pool *pgxpool.Pool
}

// NewFraudAlertRepository returns a new repository instance.
func NewFraudAlertRepository(pool *pgxpool.Pool) *FraudAlertRepository {
	return &FraudAlertRepository{pool: pool}
}

// GetByID returns a fraud alert by id, or nil.
func (r *FraudAlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error) {
	var a domain.FraudAlert
	err := r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, reason, details, notes, resolution, created_at, resolved_at
         FROM fraud_alerts WHERE id = $1`, id,
	).Scan(&a.ID, &a.AssignmentID, &a.Reason, &a.Details, &a.Notes, &a.Resolution, &a.CreatedAt, &a.ResolvedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Flag moves the assignment active -> fraud and inserts the alert in one
// transaction. The guarded update makes concurrent detectors converge: the
// loser sees zero rows changed and writes nothing.
func (r *FraudAlertRepository) Flag(ctx context.Context, alert *domain.FraudAlert) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE assignments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		domain.AssignmentFraud, alert.AssignmentID, domain.AssignmentActive)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	alert.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx,
		`INSERT INTO fraud_alerts (id, assignment_id, reason, details, created_at)
         VALUES ($1,$2,$3,$4,$5)`,
		alert.ID, alert.AssignmentID, alert.Reason, alert.Details, alert.CreatedAt)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Resolve stores the verdict and applies the assignment transition
// atomically.
func (r *FraudAlertRepository) Resolve(ctx context.Context, res port.FraudResolutionWrite) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE fraud_alerts SET resolution = $1, notes = $2, resolved_at = $3
         WHERE id = $4 AND resolved_at IS NULL`,
		res.Resolution, res.Notes, res.ResolvedAt, res.AlertID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}

	tag, err = tx.Exec(ctx,
		`UPDATE assignments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		res.NewStatus, res.AssignmentID, domain.AssignmentFraud)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}
	return nil
}
