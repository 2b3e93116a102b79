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

type adminFixture struct {
	campaigns   *mocks.MockCampaignRepository
	assignments *mocks.MockAssignmentRepository
	proofs      *mocks.MockProofRepository
	alerts      *mocks.MockFraudAlertRepository
	notifier    *mocks.MockNotifier
	svc         *AdminUseCase
}

func newAdminFixture(t *testing.T) *adminFixture {
	f := &adminFixture{
		campaigns:   mocks.NewMockCampaignRepository(t),
		assignments: mocks.NewMockAssignmentRepository(t),
		proofs:      mocks.NewMockProofRepository(t),
		alerts:      mocks.NewMockFraudAlertRepository(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	f.svc = NewAdminUseCase(f.campaigns, f.assignments, f.proofs, f.alerts, f.notifier, discardLogger())
	return f
}

func TestReviewInstallProofApprove(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), DriverID: uuid.New(), Status: domain.AssignmentAwaitingInstallApproval}
	proof := &domain.InstallProof{ID: uuid.New(), AssignmentID: a.ID, Status: domain.ReviewPending}

	f.proofs.EXPECT().GetInstallProof(mock.Anything, proof.ID).Return(proof, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.InstallReviewWrite
	f.proofs.EXPECT().
		ApplyInstallReview(mock.Anything, mock.AnythingOfType("port.InstallReviewWrite")).
		Run(func(ctx context.Context, rev port.InstallReviewWrite) {
			write = rev
		}).
		Return(nil)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).
		Run(func(ctx context.Context, event port.DriverEvent) {
			if event.Kind != port.EventInstallApproved {
				t.Errorf("event kind = %s, want %s", event.Kind, port.EventInstallApproved)
			}
		}).
		Return(nil)

	got, err := f.svc.ReviewInstallProof(context.Background(), proof.ID, port.ReviewInput{Approved: true})
	if err != nil {
		t.Fatalf("ReviewInstallProof error: %v", err)
	}
	if got.Status != domain.ReviewApproved {
		t.Fatalf("proof status = %s, want %s", got.Status, domain.ReviewApproved)
	}
	if write.NewStatus != domain.AssignmentActive {
		t.Fatalf("assignment moved to %s, want %s", write.NewStatus, domain.AssignmentActive)
	}
}

func TestReviewInstallProofRejectFallsBackToAccepted(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), DriverID: uuid.New(), Status: domain.AssignmentAwaitingInstallApproval}
	proof := &domain.InstallProof{ID: uuid.New(), AssignmentID: a.ID, Status: domain.ReviewPending}

	f.proofs.EXPECT().GetInstallProof(mock.Anything, proof.ID).Return(proof, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.InstallReviewWrite
	f.proofs.EXPECT().
		ApplyInstallReview(mock.Anything, mock.AnythingOfType("port.InstallReviewWrite")).
		Run(func(ctx context.Context, rev port.InstallReviewWrite) {
			write = rev
		}).
		Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).Return(nil)

	got, err := f.svc.ReviewInstallProof(context.Background(), proof.ID, port.ReviewInput{
		Approved: false,
		Notes:    "plate not visible on the after photo",
	})
	if err != nil {
		t.Fatalf("ReviewInstallProof error: %v", err)
	}
	if got.Status != domain.ReviewRejected {
		t.Fatalf("proof status = %s, want %s", got.Status, domain.ReviewRejected)
	}
	if write.NewStatus != domain.AssignmentAccepted {
		t.Fatalf("assignment moved to %s, want %s", write.NewStatus, domain.AssignmentAccepted)
	}
}

func TestReviewInstallProofTwiceConflicts(t *testing.T) {
	f := newAdminFixture(t)
	proof := &domain.InstallProof{ID: uuid.New(), AssignmentID: uuid.New(), Status: domain.ReviewApproved}

	f.proofs.EXPECT().GetInstallProof(mock.Anything, proof.ID).Return(proof, nil)

	_, err := f.svc.ReviewInstallProof(context.Background(), proof.ID, port.ReviewInput{Approved: true})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict on double review, got %v", err)
	}
}

func TestReviewPeriodicFinalProofClosesOut(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{
		ID:          uuid.New(),
		DriverID:    uuid.New(),
		Status:      domain.AssignmentActive,
		ProofStatus: domain.ProofPendingFinal,
	}
	proof := &domain.PeriodicProof{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Type:         domain.PeriodicProofFinal,
		Status:       domain.ReviewPending,
	}

	f.proofs.EXPECT().GetPeriodicProof(mock.Anything, proof.ID).Return(proof, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.PeriodicReviewWrite
	f.proofs.EXPECT().
		ApplyPeriodicReview(mock.Anything, mock.AnythingOfType("port.PeriodicReviewWrite")).
		Run(func(ctx context.Context, rev port.PeriodicReviewWrite) {
			write = rev
		}).
		Return(nil)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).
		Run(func(ctx context.Context, event port.DriverEvent) {
			if event.Kind != port.EventPayoutProcessed {
				t.Errorf("event kind = %s, want %s", event.Kind, port.EventPayoutProcessed)
			}
		}).
		Return(nil)

	_, err := f.svc.ReviewPeriodicProof(context.Background(), proof.ID, port.ReviewInput{Approved: true})
	if err != nil {
		t.Fatalf("ReviewPeriodicProof error: %v", err)
	}
	if !write.CloseOut {
		t.Fatal("approving a final proof must close the assignment out")
	}
	if !write.ClearProofStatus {
		t.Fatal("approval must clear the proof obligation")
	}
}

func TestReviewPeriodicRandomProofOnlyClearsObligation(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{
		ID:          uuid.New(),
		DriverID:    uuid.New(),
		Status:      domain.AssignmentActive,
		ProofStatus: domain.ProofPendingRandom,
	}
	proof := &domain.PeriodicProof{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Type:         domain.PeriodicProofRandom,
		Status:       domain.ReviewPending,
	}

	f.proofs.EXPECT().GetPeriodicProof(mock.Anything, proof.ID).Return(proof, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.PeriodicReviewWrite
	f.proofs.EXPECT().
		ApplyPeriodicReview(mock.Anything, mock.AnythingOfType("port.PeriodicReviewWrite")).
		Run(func(ctx context.Context, rev port.PeriodicReviewWrite) {
			write = rev
		}).
		Return(nil)

	_, err := f.svc.ReviewPeriodicProof(context.Background(), proof.ID, port.ReviewInput{Approved: true})
	if err != nil {
		t.Fatalf("ReviewPeriodicProof error: %v", err)
	}
	if write.CloseOut {
		t.Fatal("a random proof must not finish the assignment")
	}
	if !write.ClearProofStatus {
		t.Fatal("approval must clear the proof obligation")
	}
}

func TestReviewPeriodicProofRejectionKeepsObligation(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{
		ID:          uuid.New(),
		DriverID:    uuid.New(),
		Status:      domain.AssignmentActive,
		ProofStatus: domain.ProofPendingFinal,
	}
	proof := &domain.PeriodicProof{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Type:         domain.PeriodicProofFinal,
		Status:       domain.ReviewPending,
	}

	f.proofs.EXPECT().GetPeriodicProof(mock.Anything, proof.ID).Return(proof, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.PeriodicReviewWrite
	f.proofs.EXPECT().
		ApplyPeriodicReview(mock.Anything, mock.AnythingOfType("port.PeriodicReviewWrite")).
		Run(func(ctx context.Context, rev port.PeriodicReviewWrite) {
			write = rev
		}).
		Return(nil)

	_, err := f.svc.ReviewPeriodicProof(context.Background(), proof.ID, port.ReviewInput{
		Approved: false,
		Notes:    "photo too dark",
	})
	if err != nil {
		t.Fatalf("ReviewPeriodicProof error: %v", err)
	}
	if write.CloseOut || write.ClearProofStatus {
		t.Fatalf("rejection must keep the obligation raised, got %+v", write)
	}
}

func TestResolveFraudAlertDismiss(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), DriverID: uuid.New(), Status: domain.AssignmentFraud}
	alert := &domain.FraudAlert{ID: uuid.New(), AssignmentID: a.ID, Reason: domain.FraudReasonSpeed}

	f.alerts.EXPECT().GetByID(mock.Anything, alert.ID).Return(alert, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.FraudResolutionWrite
	f.alerts.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("port.FraudResolutionWrite")).
		Run(func(ctx context.Context, res port.FraudResolutionWrite) {
			write = res
		}).
		Return(nil)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).
		Run(func(ctx context.Context, event port.DriverEvent) {
			if event.Kind != port.EventFraudDismissed {
				t.Errorf("event kind = %s, want %s", event.Kind, port.EventFraudDismissed)
			}
		}).
		Return(nil)

	got, err := f.svc.ResolveFraudAlert(context.Background(), alert.ID, domain.FraudDismiss, "gps glitch")
	if err != nil {
		t.Fatalf("ResolveFraudAlert error: %v", err)
	}
	if write.NewStatus != domain.AssignmentActive {
		t.Fatalf("assignment moved to %s, want %s", write.NewStatus, domain.AssignmentActive)
	}
	if got.ResolvedAt == nil || got.Resolution == nil || *got.Resolution != domain.FraudDismiss {
		t.Fatalf("alert not marked resolved: %+v", got)
	}
}

func TestResolveFraudAlertPenalize(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), DriverID: uuid.New(), Status: domain.AssignmentFraud}
	alert := &domain.FraudAlert{ID: uuid.New(), AssignmentID: a.ID, Reason: domain.FraudReasonInactivity}

	f.alerts.EXPECT().GetByID(mock.Anything, alert.ID).Return(alert, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	var write port.FraudResolutionWrite
	f.alerts.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("port.FraudResolutionWrite")).
		Run(func(ctx context.Context, res port.FraudResolutionWrite) {
			write = res
		}).
		Return(nil)

	_, err := f.svc.ResolveFraudAlert(context.Background(), alert.ID, domain.FraudPenalize, "")
	if err != nil {
		t.Fatalf("ResolveFraudAlert error: %v", err)
	}
	if write.NewStatus != domain.AssignmentRemoved {
		t.Fatalf("assignment moved to %s, want %s", write.NewStatus, domain.AssignmentRemoved)
	}
}

func TestResolveFraudAlertTwiceConflicts(t *testing.T) {
	f := newAdminFixture(t)
	resolvedAt := time.Now()
	alert := &domain.FraudAlert{ID: uuid.New(), AssignmentID: uuid.New(), ResolvedAt: &resolvedAt}

	f.alerts.EXPECT().GetByID(mock.Anything, alert.ID).Return(alert, nil)

	_, err := f.svc.ResolveFraudAlert(context.Background(), alert.ID, domain.FraudDismiss, "")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict on double resolution, got %v", err)
	}
}

func TestResolveFraudAlertUnknownAction(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.svc.ResolveFraudAlert(context.Background(), uuid.New(), "forgive", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestApproveCampaign(t *testing.T) {
	f := newAdminFixture(t)
	c := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignPendingApproval}

	f.campaigns.EXPECT().GetByID(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.CampaignPendingApproval, domain.CampaignActive).
		Return(true, nil)

	if err := f.svc.ApproveCampaign(context.Background(), c.ID); err != nil {
		t.Fatalf("ApproveCampaign error: %v", err)
	}
}

func TestApproveCampaignWrongState(t *testing.T) {
	f := newAdminFixture(t)
	c := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignDraft}

	f.campaigns.EXPECT().GetByID(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.CampaignPendingApproval, domain.CampaignActive).
		Return(false, nil)

	err := f.svc.ApproveCampaign(context.Background(), c.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestConfirmRemoval(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), Status: domain.AssignmentRemovalRequested}

	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)
	f.assignments.EXPECT().
		UpdateStatus(mock.Anything, a.ID, domain.AssignmentRemovalRequested, domain.AssignmentRemoved).
		Return(true, nil)

	if err := f.svc.ConfirmRemoval(context.Background(), a.ID); err != nil {
		t.Fatalf("ConfirmRemoval error: %v", err)
	}
}

func TestConfirmRemovalIllegalFromActive(t *testing.T) {
	f := newAdminFixture(t)
	a := &domain.Assignment{ID: uuid.New(), Status: domain.AssignmentApplied}

	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)

	err := f.svc.ConfirmRemoval(context.Background(), a.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
