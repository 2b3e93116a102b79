package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
)

// BatchPing is one point of a telemetry batch as submitted by the device.
type BatchPing struct {
	Lat       float64
	Lon       float64
	Timestamp time.Time
	Speed     *float64
}

// IngestResult reports the outcome of one batch. Fraud marks a business
// rejection: points up to the violation stay persisted, the rest of the
// batch was dropped and the assignment was flagged.
type IngestResult struct {
	Accepted int64
	Fraud    bool
	Message  string
}

// TelemetryUseCase ingests GPS batches and runs the spoofing detector.
type TelemetryUseCase interface {
	// IngestBatch processes the batch in submitted order for the driver
	// behind userID. A driver without a telemetry-accepting assignment gets
	// a zero-accepted result, not an error: devices flush stale buffers
	// after campaigns end.
	IngestBatch(ctx context.Context, userID uuid.UUID, pings []BatchPing) (IngestResult, error)
}

// ScheduleInstallInput books an installer visit.
type ScheduleInstallInput struct {
	InstallerID uuid.UUID
	ScheduledAt time.Time
}

// ConfirmInstallationInput carries the before/after photo evidence. Photo
// binaries live in external storage; only URLs pass through here.
type ConfirmInstallationInput struct {
	PhotoBeforeURL string
	PhotoAfterURL  string
}

// SubmitProofInput submits a photo against an outstanding proof obligation.
type SubmitProofInput struct {
	Type     domain.PeriodicProofType
	PhotoURL string
}

// AssignmentUseCase covers the driver-facing lifecycle operations.
type AssignmentUseCase interface {
	// EligibleCampaigns lists active campaigns the driver's vehicle
	// qualifies for.
	EligibleCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)

	// Apply creates the assignment in applied status, enforcing campaign
	// capacity and the one-assignment-per-driver invariant.
	Apply(ctx context.Context, userID, campaignID uuid.UUID) (*domain.Assignment, error)

	// Current returns the driver's non-terminal assignment, or ErrNotFound.
	Current(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error)

	ScheduleInstall(ctx context.Context, userID uuid.UUID, in ScheduleInstallInput) (*domain.Assignment, error)
	ConfirmInstallation(ctx context.Context, userID uuid.UUID, in ConfirmInstallationInput) (*domain.Assignment, error)
	SubmitPeriodicProof(ctx context.Context, userID uuid.UUID, in SubmitProofInput) (*domain.PeriodicProof, error)

	// RequestRemoval moves the driver's active assignment to
	// removal_requested.
	RequestRemoval(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error)
}

// ReviewInput is the admin verdict on a proof.
type ReviewInput struct {
	Approved bool
	Notes    string
}

// AdminUseCase covers the admin collaborator surface that feeds the state
// machine.
type AdminUseCase interface {
	ListPendingInstallProofs(ctx context.Context) ([]domain.InstallProof, error)
	ReviewInstallProof(ctx context.Context, proofID uuid.UUID, in ReviewInput) (*domain.InstallProof, error)

	ListPendingPeriodicProofs(ctx context.Context) ([]domain.PeriodicProof, error)
	ReviewPeriodicProof(ctx context.Context, proofID uuid.UUID, in ReviewInput) (*domain.PeriodicProof, error)

	// ResolveFraudAlert dismisses (fraud -> active) or penalizes
	// (fraud -> removed).
	ResolveFraudAlert(ctx context.Context, alertID uuid.UUID, action domain.FraudResolution, notes string) (*domain.FraudAlert, error)

	// ApproveCampaign moves pending_approval -> active; RejectCampaign
	// moves pending_approval -> rejected.
	ApproveCampaign(ctx context.Context, campaignID uuid.UUID) error
	RejectCampaign(ctx context.Context, campaignID uuid.UUID) error

	// ConfirmRemoval closes a removal request (removal_requested ->
	// removed).
	ConfirmRemoval(ctx context.Context, assignmentID uuid.UUID) error
}

// PaymentWebhookUseCase is driven by the external payment gateway.
type PaymentWebhookUseCase interface {
	// HandlePaymentApproved promotes a draft campaign to pending_approval.
	// Non-draft campaigns are left untouched (gateways redeliver webhooks).
	HandlePaymentApproved(ctx context.Context, campaignID uuid.UUID) error
}

// JobsUseCase holds the scheduled fan-out duties and the idempotent
// per-assignment handlers the queue workers execute.
type JobsUseCase interface {
	// EnqueueDailyMetrics publishes one DailyMetricsJob per
	// telemetry-accepting assignment for the previous calendar day.
	EnqueueDailyMetrics(ctx context.Context, now time.Time) error

	// EnqueueInactivityChecks publishes one InactivityJob per
	// telemetry-accepting assignment.
	EnqueueInactivityChecks(ctx context.Context) error

	// CalculateDailyMetrics rolls one assignment's day into a DailyMetric.
	CalculateDailyMetrics(ctx context.Context, assignmentID uuid.UUID, day time.Time) error

	// CheckInactivity flags the assignment as fraud when its telemetry gap
	// exceeds the inactivity threshold.
	CheckInactivity(ctx context.Context, assignmentID uuid.UUID) error

	// CompleteCycles raises pending_final on active assignments whose
	// individual cycle has elapsed.
	CompleteCycles(ctx context.Context, now time.Time) error

	// ExpireCampaigns finishes campaigns past their end date and raises
	// pending_final on their still-active assignments.
	ExpireCampaigns(ctx context.Context, now time.Time) error

	// DrawRandomProofs raises pending_random with fixed probability on
	// assignments with no outstanding obligation.
	DrawRandomProofs(ctx context.Context) error
}
