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

// AssignmentUseCase implements the driver-facing side of the assignment
// lifecycle.
type AssignmentUseCase struct {
	drivers     port.DriverRepository
	campaigns   port.CampaignRepository
	assignments port.AssignmentRepository
	proofs      port.ProofRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewAssignmentUseCase wires the driver lifecycle operations.
func NewAssignmentUseCase(
	drivers port.DriverRepository,
	campaigns port.CampaignRepository,
	assignments port.AssignmentRepository,
	proofs port.ProofRepository,
	logger *slog.Logger,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		drivers:     drivers,
		campaigns:   campaigns,
		assignments: assignments,
		proofs:      proofs,
		logger:      logger,
		now:         time.Now,
	}
}

// requireDriver resolves the driver profile behind a user id.
func (u *AssignmentUseCase) requireDriver(ctx context.Context, userID uuid.UUID) (*domain.Driver, error) {
	driver, err := u.drivers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver profile", domain.ErrNotFound)
	}
	return driver, nil
}

// requireCurrent resolves the driver's non-terminal assignment or fails
// with ErrNotFound.
func (u *AssignmentUseCase) requireCurrent(ctx context.Context, driverID uuid.UUID) (*domain.Assignment, error) {
	a, err := u.assignments.GetCurrentByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: no current assignment", domain.ErrNotFound)
	}
	return a, nil
}

// EligibleCampaigns lists active campaigns whose category requirement the
// driver's vehicle meets.
func (u *AssignmentUseCase) EligibleCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	vehicle, err := u.drivers.GetPrimaryVehicle(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: driver has no vehicle", domain.ErrNotFound)
	}
	all, err := u.campaigns.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	eligible := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if vehicle.CategoryRank >= c.RequiredCategory {
			eligible = append(eligible, c)
		}
	}
	return eligible, nil
}

// Apply creates the assignment in applied status. The repository runs the
// insert in a transaction that locks the campaign row and re-checks seat
// capacity and the one-assignment-per-driver invariant; the checks here
// only short-circuit the obvious cases before opening a transaction.
func (u *AssignmentUseCase) Apply(ctx context.Context, userID, campaignID uuid.UUID) (*domain.Assignment, error) {
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	if driver.KycStatus != domain.KycApproved {
		return nil, fmt.Errorf("%w: driver KYC not approved", domain.ErrPermission)
	}
	vehicle, err := u.drivers.GetPrimaryVehicle(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: driver has no vehicle", domain.ErrNotFound)
	}

	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign: %w", err)
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	if campaign.Status != domain.CampaignActive {
		return nil, fmt.Errorf("%w: campaign is %s, not active", domain.ErrConflict, campaign.Status)
	}
	if vehicle.CategoryRank < campaign.RequiredCategory {
		return nil, fmt.Errorf("%w: vehicle category %d below required %d", domain.ErrPermission, vehicle.CategoryRank, campaign.RequiredCategory)
	}

	if existing, err := u.assignments.GetCurrentByDriver(ctx, driver.ID); err != nil {
		return nil, fmt.Errorf("check current assignment: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDriverBusy
	}

	a := &domain.Assignment{
		ID:           uuid.New(),
		DriverID:     driver.ID,
		CampaignID:   campaign.ID,
		VehicleID:    vehicle.ID,
		Status:       domain.AssignmentApplied,
		ProofStatus:  domain.ProofNone,
		PayoutAmount: campaign.PayoutPerDriver,
	}
	if err := u.assignments.Apply(ctx, a); err != nil {
		return nil, err
	}
	u.logger.Info("driver applied to campaign",
		slog.String("assignment_id", a.ID.String()),
		slog.String("campaign_id", campaign.ID.String()))
	return a, nil
}

// Current returns the driver's non-terminal assignment.
func (u *AssignmentUseCase) Current(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error) {
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.requireCurrent(ctx, driver.ID)
}

// ScheduleInstall books an installer visit and moves the assignment to
// scheduled (from applied, or from accepted after a rejected install).
func (u *AssignmentUseCase) ScheduleInstall(ctx context.Context, userID uuid.UUID, in port.ScheduleInstallInput) (*domain.Assignment, error) {
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	a, err := u.requireCurrent(ctx, driver.ID)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransition(domain.AssignmentScheduled) {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentScheduled)
	}
	ok, err := u.assignments.Schedule(ctx, a.ID, a.Status, in.InstallerID, in.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("schedule install: %w", err)
	}
	if !ok {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentScheduled)
	}
	a.Status = domain.AssignmentScheduled
	a.InstallerID = &in.InstallerID
	a.ScheduledInstallAt = &in.ScheduledAt
	return a, nil
}

// ConfirmInstallation stores the before/after photo evidence and moves the
// assignment to awaiting_install_approval. Both photos are required.
func (u *AssignmentUseCase) ConfirmInstallation(ctx context.Context, userID uuid.UUID, in port.ConfirmInstallationInput) (*domain.Assignment, error) {
	if in.PhotoBeforeURL == "" || in.PhotoAfterURL == "" {
		return nil, fmt.Errorf("%w: both before and after photos are required", domain.ErrValidation)
	}
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	a, err := u.requireCurrent(ctx, driver.ID)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransition(domain.AssignmentAwaitingInstallApproval) {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentAwaitingInstallApproval)
	}
	proof := &domain.InstallProof{
		ID:             uuid.New(),
		AssignmentID:   a.ID,
		PhotoBeforeURL: in.PhotoBeforeURL,
		PhotoAfterURL:  in.PhotoAfterURL,
		Status:         domain.ReviewPending,
	}
	if err := u.proofs.CreateInstallProof(ctx, proof); err != nil {
		return nil, fmt.Errorf("store install proof: %w", err)
	}
	a.Status = domain.AssignmentAwaitingInstallApproval
	u.logger.Info("install proof submitted", slog.String("assignment_id", a.ID.String()))
	return a, nil
}

// SubmitPeriodicProof records a photo against the outstanding proof
// obligation. The proof type must match the raised sub-flag.
func (u *AssignmentUseCase) SubmitPeriodicProof(ctx context.Context, userID uuid.UUID, in port.SubmitProofInput) (*domain.PeriodicProof, error) {
	if in.PhotoURL == "" {
		return nil, fmt.Errorf("%w: photo is required", domain.ErrValidation)
	}
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	a, err := u.requireCurrent(ctx, driver.ID)
	if err != nil {
		return nil, err
	}

	var want domain.ProofStatus
	switch in.Type {
	case domain.PeriodicProofRandom:
		want = domain.ProofPendingRandom
	case domain.PeriodicProofFinal:
		want = domain.ProofPendingFinal
	default:
		return nil, fmt.Errorf("%w: unknown proof type %q", domain.ErrValidation, in.Type)
	}
	if a.ProofStatus != want {
		return nil, fmt.Errorf("%w: no pending %s proof obligation", domain.ErrConflict, in.Type)
	}

	proof := &domain.PeriodicProof{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Type:         in.Type,
		PhotoURL:     in.PhotoURL,
		Status:       domain.ReviewPending,
	}
	if err := u.proofs.CreatePeriodicProof(ctx, proof); err != nil {
		return nil, fmt.Errorf("store periodic proof: %w", err)
	}
	u.logger.Info("periodic proof submitted",
		slog.String("assignment_id", a.ID.String()),
		slog.String("type", string(in.Type)))
	return proof, nil
}

// RequestRemoval moves the driver's active assignment to removal_requested.
func (u *AssignmentUseCase) RequestRemoval(ctx context.Context, userID uuid.UUID) (*domain.Assignment, error) {
	driver, err := u.requireDriver(ctx, userID)
	if err != nil {
		return nil, err
	}
	a, err := u.requireCurrent(ctx, driver.ID)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransition(domain.AssignmentRemovalRequested) {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentRemovalRequested)
	}
	ok, err := u.assignments.UpdateStatus(ctx, a.ID, a.Status, domain.AssignmentRemovalRequested)
	if err != nil {
		return nil, fmt.Errorf("request removal: %w", err)
	}
	if !ok {
		return nil, domain.NewTransitionError(a.Status, domain.AssignmentRemovalRequested)
	}
	a.Status = domain.AssignmentRemovalRequested
	return a, nil
}
