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

const assignmentColumns = `id, driver_id, campaign_id, vehicle_id, status, proof_status,
       payout_amount, installer_id, scheduled_install_at, installed_at,
       payout_processed_at, created_at, updated_at`

// nonTerminalStatuses is inlined into queries that count or resolve a
// driver's live assignment.
var nonTerminalStatuses = []string{
	string(domain.AssignmentApplied),
	string(domain.AssignmentAccepted),
	string(domain.AssignmentScheduled),
	string(domain.AssignmentAwaitingInstallApproval),
	string(domain.AssignmentActive),
	string(domain.AssignmentFraud),
	string(domain.AssignmentRemovalRequested),
}

// AssignmentRepository implements port.AssignmentRepository using pgxpool.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository returns a new repository instance.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

func scanAssignment(row pgx.CollectableRow) (domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.DriverID, &a.CampaignID, &a.VehicleID, &a.Status,
		&a.ProofStatus, &a.PayoutAmount, &a.InstallerID, &a.ScheduledInstallAt,
		&a.InstalledAt, &a.PayoutProcessedAt, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID returns an assignment by id, or nil when absent.
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAssignment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetCurrentByDriver returns the driver's non-terminal assignment, or nil.
// The partial unique index on (driver_id) WHERE status IN (...) guarantees
// at most one row.
func (r *AssignmentRepository) GetCurrentByDriver(ctx context.Context, driverID uuid.UUID) (*domain.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments
         WHERE driver_id = $1 AND status = ANY($2)
         ORDER BY created_at DESC LIMIT 1`,
		driverID, nonTerminalStatuses)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAssignment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Apply inserts the assignment inside a transaction that locks the
// campaign row and re-checks seat capacity and driver uniqueness, so two
// concurrent applications cannot both pass on stale counts.
func (r *AssignmentRepository) Apply(ctx context.Context, a *domain.Assignment) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	// Lock the campaign so the seat count cannot move under us.
	var numCars int
	err = tx.QueryRow(ctx,
		`SELECT num_cars FROM campaigns WHERE id = $1 AND status = $2 FOR UPDATE`,
		a.CampaignID, domain.CampaignActive).Scan(&numCars)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrConflict
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}

	var occupied int
	err = tx.QueryRow(ctx,
		`SELECT count(*) FROM assignments WHERE campaign_id = $1 AND status = ANY($2)`,
		a.CampaignID, nonTerminalStatuses).Scan(&occupied)
	if err != nil {
		return err
	}
	if occupied >= numCars {
		err = domain.ErrCampaignFull
		return domain.ErrCampaignFull
	}

	var driverBusy int
	err = tx.QueryRow(ctx,
		`SELECT count(*) FROM assignments WHERE driver_id = $1 AND status = ANY($2)`,
		a.DriverID, nonTerminalStatuses).Scan(&driverBusy)
	if err != nil {
		return err
	}
	if driverBusy > 0 {
		err = domain.ErrDriverBusy
		return domain.ErrDriverBusy
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err = tx.Exec(ctx,
		`INSERT INTO assignments (id, driver_id, campaign_id, vehicle_id, status, proof_status,
                                  payout_amount, created_at, updated_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.DriverID, a.CampaignID, a.VehicleID, a.Status, a.ProofStatus,
		a.PayoutAmount, a.CreatedAt, a.UpdatedAt)
	return err
}

// UpdateStatus moves the assignment from -> to, reporting whether a row
// changed.
func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AssignmentStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE assignments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Schedule records the installer visit and moves the assignment to
// scheduled in a single guarded update.
func (r *AssignmentRepository) Schedule(ctx context.Context, id uuid.UUID, from domain.AssignmentStatus, installerID uuid.UUID, scheduledAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE assignments
         SET status = $1, installer_id = $2, scheduled_install_at = $3, updated_at = now()
         WHERE id = $4 AND status = $5`,
		domain.AssignmentScheduled, installerID, scheduledAt, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetProofStatus raises or clears the proof sub-flag, guarded by the
// expected current flag.
func (r *AssignmentRepository) SetProofStatus(ctx context.Context, id uuid.UUID, from, to domain.ProofStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE assignments SET proof_status = $1, updated_at = now()
         WHERE id = $2 AND proof_status = $3`,
		to, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByStatuses returns assignments in any of the given statuses.
func (r *AssignmentRepository) ListByStatuses(ctx context.Context, statuses []domain.AssignmentStatus) ([]domain.Assignment, error) {
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE status = ANY($1) ORDER BY created_at`,
		raw)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAssignment)
}

// ListActiveByCampaign returns the campaign's assignments still in active
// status.
func (r *AssignmentRepository) ListActiveByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE campaign_id = $1 AND status = $2`,
		campaignID, domain.AssignmentActive)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAssignment)
}
