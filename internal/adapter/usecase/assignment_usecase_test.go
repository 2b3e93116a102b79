package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
	"drivead/internal/core/port/mocks"
)

type assignmentFixture struct {
	drivers     *mocks.MockDriverRepository
	campaigns   *mocks.MockCampaignRepository
	assignments *mocks.MockAssignmentRepository
	proofs      *mocks.MockProofRepository
	svc         *AssignmentUseCase
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	f := &assignmentFixture{
		drivers:     mocks.NewMockDriverRepository(t),
		campaigns:   mocks.NewMockCampaignRepository(t),
		assignments: mocks.NewMockAssignmentRepository(t),
		proofs:      mocks.NewMockProofRepository(t),
	}
	f.svc = NewAssignmentUseCase(f.drivers, f.campaigns, f.assignments, f.proofs, discardLogger())
	return f
}

func approvedDriver(userID uuid.UUID) *domain.Driver {
	return &domain.Driver{ID: uuid.New(), UserID: userID, KycStatus: domain.KycApproved}
}

func TestApplyCreatesAssignment(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	vehicle := &domain.Vehicle{ID: uuid.New(), DriverID: driver.ID, CategoryRank: 3}
	campaign := &domain.Campaign{
		ID:               uuid.New(),
		Status:           domain.CampaignActive,
		RequiredCategory: 2,
		PayoutPerDriver:  30000,
	}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.drivers.EXPECT().GetPrimaryVehicle(mock.Anything, driver.ID).Return(vehicle, nil)
	f.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(nil, nil)
	f.assignments.EXPECT().
		Apply(mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Return(nil)

	a, err := f.svc.Apply(context.Background(), userID, campaign.ID)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if a.Status != domain.AssignmentApplied {
		t.Fatalf("status = %s, want %s", a.Status, domain.AssignmentApplied)
	}
	if a.ProofStatus != domain.ProofNone {
		t.Fatalf("proof status = %s, want %s", a.ProofStatus, domain.ProofNone)
	}
	if a.PayoutAmount != campaign.PayoutPerDriver {
		t.Fatalf("payout = %d, want %d", a.PayoutAmount, campaign.PayoutPerDriver)
	}
}

func TestApplyRejectsUnapprovedKyc(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := &domain.Driver{ID: uuid.New(), UserID: userID, KycStatus: domain.KycPending}
	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)

	_, err := f.svc.Apply(context.Background(), userID, uuid.New())
	if !errors.Is(err, domain.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
}

func TestApplyRejectsBusyDriver(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	vehicle := &domain.Vehicle{ID: uuid.New(), DriverID: driver.ID, CategoryRank: 3}
	campaign := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive, RequiredCategory: 1}
	existing := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentActive}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.drivers.EXPECT().GetPrimaryVehicle(mock.Anything, driver.ID).Return(vehicle, nil)
	f.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(existing, nil)

	_, err := f.svc.Apply(context.Background(), userID, campaign.ID)
	if !errors.Is(err, domain.ErrDriverBusy) {
		t.Fatalf("expected ErrDriverBusy, got %v", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("ErrDriverBusy must wrap ErrConflict, got %v", err)
	}
}

func TestApplySurfacesCampaignFull(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	vehicle := &domain.Vehicle{ID: uuid.New(), DriverID: driver.ID, CategoryRank: 3}
	campaign := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive, RequiredCategory: 1}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.drivers.EXPECT().GetPrimaryVehicle(mock.Anything, driver.ID).Return(vehicle, nil)
	f.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(nil, nil)
	f.assignments.EXPECT().
		Apply(mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Return(domain.ErrCampaignFull)

	_, err := f.svc.Apply(context.Background(), userID, campaign.ID)
	if !errors.Is(err, domain.ErrCampaignFull) {
		t.Fatalf("expected ErrCampaignFull, got %v", err)
	}
}

func TestApplyRejectsCategoryBelowRequirement(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	vehicle := &domain.Vehicle{ID: uuid.New(), DriverID: driver.ID, CategoryRank: 1}
	campaign := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive, RequiredCategory: 3}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.drivers.EXPECT().GetPrimaryVehicle(mock.Anything, driver.ID).Return(vehicle, nil)
	f.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)

	_, err := f.svc.Apply(context.Background(), userID, campaign.ID)
	if !errors.Is(err, domain.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
}

func TestEligibleCampaignsFiltersByCategory(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	vehicle := &domain.Vehicle{ID: uuid.New(), DriverID: driver.ID, CategoryRank: 2}
	economy := domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive, RequiredCategory: 1}
	premium := domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive, RequiredCategory: 3}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.drivers.EXPECT().GetPrimaryVehicle(mock.Anything, driver.ID).Return(vehicle, nil)
	f.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.Campaign{economy, premium}, nil)

	got, err := f.svc.EligibleCampaigns(context.Background(), userID)
	if err != nil {
		t.Fatalf("EligibleCampaigns error: %v", err)
	}
	if len(got) != 1 || got[0].ID != economy.ID {
		t.Fatalf("expected only the economy campaign, got %v", got)
	}
}

func TestScheduleInstallFromApplied(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentApplied}
	installerID := uuid.New()
	when := time.Now().Add(48 * time.Hour)

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)
	f.assignments.EXPECT().
		Schedule(mock.Anything, a.ID, domain.AssignmentApplied, installerID, when).
		Return(true, nil)

	got, err := f.svc.ScheduleInstall(context.Background(), userID, port.ScheduleInstallInput{
		InstallerID: installerID,
		ScheduledAt: when,
	})
	if err != nil {
		t.Fatalf("ScheduleInstall error: %v", err)
	}
	if got.Status != domain.AssignmentScheduled {
		t.Fatalf("status = %s, want %s", got.Status, domain.AssignmentScheduled)
	}
}

func TestScheduleInstallRejectsActiveAssignment(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentActive}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)

	_, err := f.svc.ScheduleInstall(context.Background(), userID, port.ScheduleInstallInput{
		InstallerID: uuid.New(),
		ScheduledAt: time.Now(),
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected a transition conflict, got %v", err)
	}
	var te *domain.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %T", err)
	}
	if te.From != domain.AssignmentActive || te.To != domain.AssignmentScheduled {
		t.Fatalf("unexpected edge %s -> %s", te.From, te.To)
	}
}

func TestConfirmInstallationRequiresBothPhotos(t *testing.T) {
	f := newAssignmentFixture(t)

	_, err := f.svc.ConfirmInstallation(context.Background(), uuid.New(), port.ConfirmInstallationInput{
		PhotoBeforeURL: "https://cdn/x/before.jpg",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestConfirmInstallationSubmitsProof(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentScheduled}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)
	f.proofs.EXPECT().
		CreateInstallProof(mock.Anything, mock.AnythingOfType("*domain.InstallProof")).
		Run(func(ctx context.Context, p *domain.InstallProof) {
			if p.AssignmentID != a.ID {
				t.Errorf("proof bound to %s, want %s", p.AssignmentID, a.ID)
			}
			if p.Status != domain.ReviewPending {
				t.Errorf("proof status = %s, want %s", p.Status, domain.ReviewPending)
			}
		}).
		Return(nil)

	got, err := f.svc.ConfirmInstallation(context.Background(), userID, port.ConfirmInstallationInput{
		PhotoBeforeURL: "https://cdn/x/before.jpg",
		PhotoAfterURL:  "https://cdn/x/after.jpg",
	})
	if err != nil {
		t.Fatalf("ConfirmInstallation error: %v", err)
	}
	if got.Status != domain.AssignmentAwaitingInstallApproval {
		t.Fatalf("status = %s, want %s", got.Status, domain.AssignmentAwaitingInstallApproval)
	}
}

func TestSubmitPeriodicProofRequiresMatchingObligation(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{
		ID:          uuid.New(),
		DriverID:    driver.ID,
		Status:      domain.AssignmentActive,
		ProofStatus: domain.ProofNone,
	}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)

	_, err := f.svc.SubmitPeriodicProof(context.Background(), userID, port.SubmitProofInput{
		Type:     domain.PeriodicProofRandom,
		PhotoURL: "https://cdn/x/spot.jpg",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict without a raised obligation, got %v", err)
	}
}

func TestSubmitPeriodicProofStoresPendingReview(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{
		ID:          uuid.New(),
		DriverID:    driver.ID,
		Status:      domain.AssignmentActive,
		ProofStatus: domain.ProofPendingFinal,
	}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)
	f.proofs.EXPECT().
		CreatePeriodicProof(mock.Anything, mock.AnythingOfType("*domain.PeriodicProof")).
		Return(nil)

	proof, err := f.svc.SubmitPeriodicProof(context.Background(), userID, port.SubmitProofInput{
		Type:     domain.PeriodicProofFinal,
		PhotoURL: "https://cdn/x/final.jpg",
	})
	if err != nil {
		t.Fatalf("SubmitPeriodicProof error: %v", err)
	}
	if proof.Type != domain.PeriodicProofFinal || proof.Status != domain.ReviewPending {
		t.Fatalf("unexpected proof %+v", proof)
	}
}

func TestRequestRemovalFromActive(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentActive}

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)
	f.assignments.EXPECT().
		UpdateStatus(mock.Anything, a.ID, domain.AssignmentActive, domain.AssignmentRemovalRequested).
		Return(true, nil)

	got, err := f.svc.RequestRemoval(context.Background(), userID)
	if err != nil {
		t.Fatalf("RequestRemoval error: %v", err)
	}
	if got.Status != domain.AssignmentRemovalRequested {
		t.Fatalf("status = %s, want %s", got.Status, domain.AssignmentRemovalRequested)
	}
}

func TestCurrentWithoutAssignment(t *testing.T) {
	f := newAssignmentFixture(t)
	userID := uuid.New()
	driver := approvedDriver(userID)

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(nil, nil)

	_, err := f.svc.Current(context.Background(), userID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
