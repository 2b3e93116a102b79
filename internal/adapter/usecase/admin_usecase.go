package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

// AdminUseCase implements the admin collaborator surface: proof reviews,
// fraud alert resolution, campaign approval and removal confirmation. Every
// mutation goes through the same state-machine contract as the automated
// transitions.
type AdminUseCase struct {
	campaigns   port.CampaignRepository
	assignments port.AssignmentRepository
	proofs      port.ProofRepository
	alerts      port.FraudAlertRepository
	notifier    port.Notifier
	logger      *slog.Logger
	now         func() time.Time
}

// NewAdminUseCase wires the admin operations.
func NewAdminUseCase(
	campaigns port.CampaignRepository,
	assignments port.AssignmentRepository,
	proofs port.ProofRepository,
	alerts port.FraudAlertRepository,
	notifier port.Notifier,
	logger *slog.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		campaigns:   campaigns,
		assignments: assignments,
		proofs:      proofs,
		alerts:      alerts,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// ListPendingInstallProofs returns install proofs awaiting review.
func (u *AdminUseCase) ListPendingInstallProofs(ctx context.Context) ([]domain.InstallProof, error) {
	return u.proofs.ListPendingInstallProofs(ctx)
}

// ReviewInstallProof approves (assignment goes active, installedAt is
// stamped) or rejects (back to accepted, driver may reschedule) an install
// proof. Re-reviewing a resolved proof is a conflict.
func (u *AdminUseCase) ReviewInstallProof(ctx context.Context, proofID uuid.UUID, in port.ReviewInput) (*domain.InstallProof, error) {
	proof, err := u.proofs.GetInstallProof(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("resolve install proof: %w", err)
	}
	if proof == nil {
		return nil, fmt.Errorf("%w: install proof %s", domain.ErrNotFound, proofID)
	}
	if proof.Status != domain.ReviewPending {
		return nil, fmt.Errorf("%w: proof already %s", domain.ErrConflict, proof.Status)
	}

	a, err := u.assignments.GetByID(ctx, proof.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: assignment %s", domain.ErrNotFound, proof.AssignmentID)
	}

	newStatus := domain.AssignmentActive
	if !in.Approved {
		newStatus = domain.AssignmentAccepted
	}
	if !a.Status.CanTransition(newStatus) {
		return nil, domain.NewTransitionError(a.Status, newStatus)
	}

	reviewedAt := u.now().UTC()
	err = u.proofs.ApplyInstallReview(ctx, port.InstallReviewWrite{
		ProofID:      proof.ID,
		AssignmentID: a.ID,
		Approved:     in.Approved,
		Notes:        in.Notes,
		ReviewedAt:   reviewedAt,
		NewStatus:    newStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("apply install review: %w", err)
	}

	kind := port.EventInstallApproved
	msg := "installation approved, campaign is live"
	if !in.Approved {
		kind = port.EventInstallRejected
		msg = "installation rejected, please reschedule"
	}
	if err := u.notifier.Notify(ctx, port.DriverEvent{
		Kind:         kind,
		DriverID:     a.DriverID,
		AssignmentID: a.ID,
		Message:      msg,
	}); err != nil {
		u.logger.Error("notify install review", slog.Any("error", err))
	}

	proof.Status = domain.ReviewApproved
	if !in.Approved {
		proof.Status = domain.ReviewRejected
	}
	proof.Notes = in.Notes
	proof.ReviewedAt = &reviewedAt
	u.logger.Info("install proof reviewed",
		slog.String("proof_id", proof.ID.String()),
		slog.Bool("approved", in.Approved))
	return proof, nil
}

// ListPendingPeriodicProofs returns periodic proofs awaiting review.
func (u *AdminUseCase) ListPendingPeriodicProofs(ctx context.Context) ([]domain.PeriodicProof, error) {
	return u.proofs.ListPendingPeriodicProofs(ctx)
}

// ReviewPeriodicProof approves or rejects a random/final proof. Approving
// a final proof closes the assignment out: finished status, payout
// processed, wallet event emitted. Approving a random proof just clears
// the obligation. Rejection leaves the obligation raised so the driver
// must resubmit.
func (u *AdminUseCase) ReviewPeriodicProof(ctx context.Context, proofID uuid.UUID, in port.ReviewInput) (*domain.PeriodicProof, error) {
	proof, err := u.proofs.GetPeriodicProof(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("resolve periodic proof: %w", err)
	}
	if proof == nil {
		return nil, fmt.Errorf("%w: periodic proof %s", domain.ErrNotFound, proofID)
	}
	if proof.Status != domain.ReviewPending {
		return nil, fmt.Errorf("%w: proof already %s", domain.ErrConflict, proof.Status)
	}

	a, err := u.assignments.GetByID(ctx, proof.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: assignment %s", domain.ErrNotFound, proof.AssignmentID)
	}

	closeOut := in.Approved && proof.Type == domain.PeriodicProofFinal
	if closeOut && !a.Status.CanTransition(domain.AssignmentFinished) {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentFinished)
	}

	reviewedAt := u.now().UTC()
	err = u.proofs.ApplyPeriodicReview(ctx, port.PeriodicReviewWrite{
		ProofID:          proof.ID,
		AssignmentID:     a.ID,
		Approved:         in.Approved,
		Notes:            in.Notes,
		ReviewedAt:       reviewedAt,
		ClearProofStatus: in.Approved,
		CloseOut:         closeOut,
	})
	if err != nil {
		return nil, fmt.Errorf("apply periodic review: %w", err)
	}

	if closeOut {
		if err := u.notifier.Notify(ctx, port.DriverEvent{
			Kind:         port.EventPayoutProcessed,
			DriverID:     a.DriverID,
			AssignmentID: a.ID,
			Message:      "campaign completed, payout on the way",
		}); err != nil {
			u.logger.Error("notify payout", slog.Any("error", err))
		}
	}

	proof.Status = domain.ReviewApproved
	if !in.Approved {
		proof.Status = domain.ReviewRejected
	}
	proof.Notes = in.Notes
	proof.ReviewedAt = &reviewedAt
	u.logger.Info("periodic proof reviewed",
		slog.String("proof_id", proof.ID.String()),
		slog.String("type", string(proof.Type)),
		slog.Bool("approved", in.Approved))
	return proof, nil
}

// ResolveFraudAlert applies the admin verdict: dismiss reinstates the
// assignment (false positive), penalize removes it permanently.
func (u *AdminUseCase) ResolveFraudAlert(ctx context.Context, alertID uuid.UUID, action domain.FraudResolution, notes string) (*domain.FraudAlert, error) {
	var newStatus domain.AssignmentStatus
	switch action {
	case domain.FraudDismiss:
		newStatus = domain.AssignmentActive
	case domain.FraudPenalize:
		newStatus = domain.AssignmentRemoved
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}

	alert, err := u.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("resolve alert: %w", err)
	}
	if alert == nil {
		return nil, fmt.Errorf("%w: fraud alert %s", domain.ErrNotFound, alertID)
	}
	if alert.ResolvedAt != nil {
		return nil, fmt.Errorf("%w: alert already resolved", domain.ErrConflict)
	}

	a, err := u.assignments.GetByID(ctx, alert.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: assignment %s", domain.ErrNotFound, alert.AssignmentID)
	}
	if !a.Status.CanTransition(newStatus) {
		return nil, domain.NewTransitionError(a.Status, newStatus)
	}

	resolvedAt := u.now().UTC()
	err = u.alerts.Resolve(ctx, port.FraudResolutionWrite{
		AlertID:      alert.ID,
		AssignmentID: a.ID,
		Resolution:   action,
		Notes:        notes,
		ResolvedAt:   resolvedAt,
		NewStatus:    newStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve fraud alert: %w", err)
	}

	if action == domain.FraudDismiss {
		if err := u.notifier.Notify(ctx, port.DriverEvent{
			Kind:         port.EventFraudDismissed,
			DriverID:     a.DriverID,
			AssignmentID: a.ID,
			Message:      "fraud alert dismissed, telemetry resumed",
		}); err != nil {
			u.logger.Error("notify fraud dismissal", slog.Any("error", err))
		}
	}

	alert.Resolution = &action
	alert.Notes = notes
	alert.ResolvedAt = &resolvedAt
	u.logger.Info("fraud alert resolved",
		slog.String("alert_id", alert.ID.String()),
		slog.String("action", string(action)))
	return alert, nil
}

// ApproveCampaign moves a paid campaign into active status so drivers can
// apply.
func (u *AdminUseCase) ApproveCampaign(ctx context.Context, campaignID uuid.UUID) error {
	return u.moveCampaign(ctx, campaignID, domain.CampaignPendingApproval, domain.CampaignActive)
}

// RejectCampaign declines a paid campaign.
func (u *AdminUseCase) RejectCampaign(ctx context.Context, campaignID uuid.UUID) error {
	return u.moveCampaign(ctx, campaignID, domain.CampaignPendingApproval, domain.CampaignRejected)
}

func (u *AdminUseCase) moveCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) error {
	c, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve campaign: %w", err)
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	ok, err := u.campaigns.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: campaign is %s, expected %s", domain.ErrConflict, c.Status, from)
	}
	u.logger.Info("campaign status changed",
		slog.String("campaign_id", id.String()),
		slog.String("to", string(to)))
	return nil
}

// ConfirmRemoval closes a removal request after the sticker is physically
// taken off.
func (u *AdminUseCase) ConfirmRemoval(ctx context.Context, assignmentID uuid.UUID) error {
	a, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil {
		return fmt.Errorf("%w: assignment %s", domain.ErrNotFound, assignmentID)
	}
	if !a.Status.CanTransition(domain.AssignmentRemoved) {
		return domain.NewTransitionError(a.Status, domain.AssignmentRemoved)
	}
	ok, err := u.assignments.UpdateStatus(ctx, a.ID, a.Status, domain.AssignmentRemoved)
	if err != nil {
		return fmt.Errorf("confirm removal: %w", err)
	}
	if !ok {
		return domain.NewTransitionError(a.Status, domain.AssignmentRemoved)
	}
	return nil
}
