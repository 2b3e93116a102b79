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

// ProofRepository implements port.ProofRepository using pgxpool. Proof
// writes and the assignment transitions they imply share one transaction.
type ProofRepository struct {
	pool *pgxpool.Pool
}

// NewProofRepository returns a new repository instance.
func NewProofRepository(pool *pgxpool.Pool) *ProofRepository {
	return &ProofRepository{pool: pool}
}

// CreateInstallProof inserts the proof and moves the assignment
// scheduled -> awaiting_install_approval atomically.
func (r *ProofRepository) CreateInstallProof(ctx context.Context, p *domain.InstallProof) error {
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
		`UPDATE assignments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		domain.AssignmentAwaitingInstallApproval, p.AssignmentID, domain.AssignmentScheduled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}

	p.CreatedAt = time.Now().UTC()
	p.Status = domain.ReviewPending
	_, err = tx.Exec(ctx,
		`INSERT INTO install_proofs (id, assignment_id, photo_before_url, photo_after_url, status, created_at)
         VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.AssignmentID, p.PhotoBeforeURL, p.PhotoAfterURL, p.Status, p.CreatedAt)
	return err
}

// GetInstallProof returns an install proof by id, or nil.
func (r *ProofRepository) GetInstallProof(ctx context.Context, id uuid.UUID) (*domain.InstallProof, error) {
	var p domain.InstallProof
	err := r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, photo_before_url, photo_after_url, status, notes, created_at, reviewed_at
         FROM install_proofs WHERE id = $1`, id,
	).Scan(&p.ID, &p.AssignmentID, &p.PhotoBeforeURL, &p.PhotoAfterURL, &p.Status, &p.Notes, &p.CreatedAt, &p.ReviewedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPendingInstallProofs returns install proofs awaiting review, oldest
// first.
func (r *ProofRepository) ListPendingInstallProofs(ctx context.Context) ([]domain.InstallProof, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, photo_before_url, photo_after_url, status, notes, created_at, reviewed_at
         FROM install_proofs WHERE status = $1 ORDER BY created_at`, domain.ReviewPending)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InstallProof, error) {
		var p domain.InstallProof
		err := row.Scan(&p.ID, &p.AssignmentID, &p.PhotoBeforeURL, &p.PhotoAfterURL, &p.Status, &p.Notes, &p.CreatedAt, &p.ReviewedAt)
		return p, err
	})
}

// ApplyInstallReview writes the verdict and the assignment transition in
// one transaction. Approval stamps installedAt with the review time.
func (r *ProofRepository) ApplyInstallReview(ctx context.Context, rev port.InstallReviewWrite) error {
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

	verdict := domain.ReviewApproved
	if !rev.Approved {
		verdict = domain.ReviewRejected
	}
	tag, err := tx.Exec(ctx,
		`UPDATE install_proofs SET status = $1, notes = $2, reviewed_at = $3 WHERE id = $4 AND status = $5`,
		verdict, rev.Notes, rev.ReviewedAt, rev.ProofID, domain.ReviewPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}

	if rev.Approved {
		tag, err = tx.Exec(ctx,
			`UPDATE assignments SET status = $1, installed_at = $2, updated_at = now()
             WHERE id = $3 AND status = $4`,
			rev.NewStatus, rev.ReviewedAt, rev.AssignmentID, domain.AssignmentAwaitingInstallApproval)
	} else {
		tag, err = tx.Exec(ctx,
			`UPDATE assignments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
			rev.NewStatus, rev.AssignmentID, domain.AssignmentAwaitingInstallApproval)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}
	return nil
}

// CreatePeriodicProof inserts a periodic proof in pending status.
func (r *ProofRepository) CreatePeriodicProof(ctx context.Context, p *domain.PeriodicProof) error {
	p.CreatedAt = time.Now().UTC()
	p.Status = domain.ReviewPending
	_, err := r.pool.Exec(ctx,
		`INSERT INTO periodic_proofs (id, assignment_id, type, photo_url, status, created_at)
         VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.AssignmentID, p.Type, p.PhotoURL, p.Status, p.CreatedAt)
	return err
}

// GetPeriodicProof returns a periodic proof by id, or nil.
func (r *ProofRepository) GetPeriodicProof(ctx context.Context, id uuid.UUID) (*domain.PeriodicProof, error) {
	var p domain.PeriodicProof
	err := r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, type, photo_url, status, notes, created_at, reviewed_at
         FROM periodic_proofs WHERE id = $1`, id,
	).Scan(&p.ID, &p.AssignmentID, &p.Type, &p.PhotoURL, &p.Status, &p.Notes, &p.CreatedAt, &p.ReviewedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPendingPeriodicProofs returns periodic proofs awaiting review,
// oldest first.
func (r *ProofRepository) ListPendingPeriodicProofs(ctx context.Context) ([]domain.PeriodicProof, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, type, photo_url, status, notes, created_at, reviewed_at
         FROM periodic_proofs WHERE status = $1 ORDER BY created_at`, domain.ReviewPending)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PeriodicProof, error) {
		var p domain.PeriodicProof
		err := row.Scan(&p.ID, &p.AssignmentID, &p.Type, &p.PhotoURL, &p.Status, &p.Notes, &p.CreatedAt, &p.ReviewedAt)
		return p, err
	})
}

// ApplyPeriodicReview writes the verdict; approval clears the proof
// sub-flag and, on close-out, finishes the assignment and stamps the
// payout, all in one transaction.
func (r *ProofRepository) ApplyPeriodicReview(ctx context.Context, rev port.PeriodicReviewWrite) error {
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

	verdict := domain.ReviewApproved
	if !rev.Approved {
		verdict = domain.ReviewRejected
	}
	tag, err := tx.Exec(ctx,
		`UPDATE periodic_proofs SET status = $1, notes = $2, reviewed_at = $3 WHERE id = $4 AND status = $5`,
		verdict, rev.Notes, rev.ReviewedAt, rev.ProofID, domain.ReviewPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrConflict
		return err
	}

	if rev.CloseOut {
		tag, err = tx.Exec(ctx,
			`UPDATE assignments
             SET status = $1, proof_status = $2, payout_processed_at = $3, updated_at = now()
             WHERE id = $4 AND status = $5`,
			domain.AssignmentFinished, domain.ProofNone, rev.ReviewedAt,
			rev.AssignmentID, domain.AssignmentActive)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			err = domain.ErrConflict
			return err
		}
	} else if rev.ClearProofStatus {
		_, err = tx.Exec(ctx,
			`UPDATE assignments SET proof_status = $1, updated_at = now() WHERE id = $2`,
			domain.ProofNone, rev.AssignmentID)
		if err != nil {
			return err
		}
	}
	return nil
}
