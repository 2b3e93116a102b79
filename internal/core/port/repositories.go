package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
)

// DriverRepository resolves driver profiles and their vehicles. Lookup
// methods return (nil, nil) when the entity does not exist.
type DriverRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Driver, error)
	GetPrimaryVehicle(ctx context.Context, driverID uuid.UUID) (*domain.Vehicle, error)
}

// CampaignRepository provides campaign reads and guarded status updates.
type CampaignRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// UpdateStatus moves the campaign from -> to and reports whether a row
	// changed. A false result means the campaign was not in the expected
	// state (lost race or double delivery) and the caller should treat the
	// operation as a no-op or a conflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error)

	// ListActive returns campaigns currently accepting applications.
	ListActive(ctx context.Context) ([]domain.Campaign, error)

	// ListActiveExpired returns active campaigns whose absolute end date is
	// before now.
	ListActiveExpired(ctx context.Context, now time.Time) ([]domain.Campaign, error)
}

// AssignmentRepository is the authoritative store of the assignment
// lifecycle. All mutating methods are transactional with their co-located
// writes and guarded by the expected current status, so at-least-once job
// delivery and concurrent admin actions degrade to no-ops instead of
// double transitions.
type AssignmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)

	// GetCurrentByDriver returns the driver's single non-terminal
	// assignment, or nil when the driver has none.
	GetCurrentByDriver(ctx context.Context, driverID uuid.UUID) (*domain.Assignment, error)

	// Apply inserts the assignment in a transaction that locks the campaign
	// row and re-checks both invariants: seats below numCars and no other
	// non-terminal assignment for the driver. Violations surface as
	// domain.ErrCampaignFull / domain.ErrDriverBusy.
	Apply(ctx context.Context, a *domain.Assignment) error

	// UpdateStatus moves the assignment from -> to and reports whether a
	// row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AssignmentStatus) (bool, error)

	// Schedule records the installer visit and moves the assignment to
	// scheduled, guarded by the given current status.
	Schedule(ctx context.Context, id uuid.UUID, from domain.AssignmentStatus, installerID uuid.UUID, scheduledAt time.Time) (bool, error)

	// SetProofStatus raises or clears the proof obligation sub-flag. The
	// expected current flag guards the write so re-delivered lifecycle jobs
	// do not clobber a newer obligation.
	SetProofStatus(ctx context.Context, id uuid.UUID, from, to domain.ProofStatus) (bool, error)

	// ListByStatuses returns assignments in any of the given statuses.
	ListByStatuses(ctx context.Context, statuses []domain.AssignmentStatus) ([]domain.Assignment, error)

	// ListActiveByCampaign returns the campaign's assignments still in
	// active status.
	ListActiveByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Assignment, error)
}

// FraudAlertRepository persists fraud alerts and the transitions they
// drive.
type FraudAlertRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error)

	// Flag transitions the assignment active -> fraud and inserts the alert
	// in one transaction. It reports false without writing anything when
	// the assignment is no longer active, which makes concurrent detectors
	// converge on a single alert.
	Flag(ctx context.Context, alert *domain.FraudAlert) (bool, error)

	// Resolve stores the admin verdict and applies the resulting
	// assignment transition (fraud -> active or fraud -> removed)
	// atomically.
	Resolve(ctx context.Context, res FraudResolutionWrite) error
}

// FraudResolutionWrite is the atomic write performed when an admin resolves
// an alert. NewStatus is decided by the usecase through the state machine.
type FraudResolutionWrite struct {
	AlertID      uuid.UUID
	AssignmentID uuid.UUID
	Resolution   domain.FraudResolution
	Notes        string
	ResolvedAt   time.Time
	NewStatus    domain.AssignmentStatus
}

// ProofRepository persists install and periodic proofs together with the
// assignment transitions their submission and review imply.
type ProofRepository interface {
	// CreateInstallProof inserts the proof and moves the assignment
	// scheduled -> awaiting_install_approval in one transaction.
	CreateInstallProof(ctx context.Context, p *domain.InstallProof) error

	GetInstallProof(ctx context.Context, id uuid.UUID) (*domain.InstallProof, error)
	ListPendingInstallProofs(ctx context.Context) ([]domain.InstallProof, error)

	// ApplyInstallReview writes the review verdict and the assignment
	// transition atomically.
	ApplyInstallReview(ctx context.Context, rev InstallReviewWrite) error

	CreatePeriodicProof(ctx context.Context, p *domain.PeriodicProof) error
	GetPeriodicProof(ctx context.Context, id uuid.UUID) (*domain.PeriodicProof, error)
	ListPendingPeriodicProofs(ctx context.Context) ([]domain.PeriodicProof, error)

	// ApplyPeriodicReview writes the review verdict; when CloseOut is set
	// it also finishes the assignment and stamps payoutProcessedAt in the
	// same transaction.
	ApplyPeriodicReview(ctx context.Context, rev PeriodicReviewWrite) error
}

// InstallReviewWrite is the atomic write for an install-proof review.
type InstallReviewWrite struct {
	ProofID      uuid.UUID
	AssignmentID uuid.UUID
	Approved     bool
	Notes        string
	ReviewedAt   time.Time
	// NewStatus is active on approval (installedAt is stamped with
	// ReviewedAt) or accepted on rejection.
	NewStatus domain.AssignmentStatus
}

// PeriodicReviewWrite is the atomic write for a periodic-proof review.
type PeriodicReviewWrite struct {
	ProofID      uuid.UUID
	AssignmentID uuid.UUID
	Approved     bool
	Notes        string
	ReviewedAt   time.Time
	// ClearProofStatus resets the assignment's obligation sub-flag.
	ClearProofStatus bool
	// CloseOut finishes the assignment and stamps payoutProcessedAt.
	CloseOut bool
}

// PositionRepository stores the append-only ping stream.
type PositionRepository interface {
	// LastByDriver returns the most recent stored ping for the driver
	// across assignments, or nil when none exists. It anchors the speed
	// check for the first point of a batch.
	LastByDriver(ctx context.Context, driverID uuid.UUID) (*domain.Position, error)

	// LastByAssignment returns the assignment's most recent ping, or nil.
	LastByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Position, error)

	// BulkInsert appends the accepted points, silently dropping duplicate
	// (assignment, ts) pairs, and returns the number actually inserted.
	BulkInsert(ctx context.Context, positions []domain.Position) (int64, error)

	// ListForDay returns the assignment's pings with ts in [day, day+24h)
	// ordered by ts ascending.
	ListForDay(ctx context.Context, assignmentID uuid.UUID, day time.Time) ([]domain.Position, error)
}

// MetricRepository stores daily rollups.
type MetricRepository interface {
	// Upsert overwrites the (assignment, day) row; re-running a day never
	// accumulates.
	Upsert(ctx context.Context, m domain.DailyMetric) error
}
