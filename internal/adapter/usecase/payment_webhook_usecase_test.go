package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"drivead/internal/core/domain"
	"drivead/internal/core/port/mocks"
)

func TestHandlePaymentApprovedPromotesDraft(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewPaymentWebhookUseCase(campaigns, discardLogger())

	c := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignDraft}
	campaigns.EXPECT().GetByID(mock.Anything, c.ID).Return(c, nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.CampaignDraft, domain.CampaignPendingApproval).
		Return(true, nil)

	if err := svc.HandlePaymentApproved(context.Background(), c.ID); err != nil {
		t.Fatalf("HandlePaymentApproved error: %v", err)
	}
}

func TestHandlePaymentApprovedRedeliveryIsNoOp(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewPaymentWebhookUseCase(campaigns, discardLogger())

	c := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignActive}
	campaigns.EXPECT().GetByID(mock.Anything, c.ID).Return(c, nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.CampaignDraft, domain.CampaignPendingApproval).
		Return(false, nil)

	if err := svc.HandlePaymentApproved(context.Background(), c.ID); err != nil {
		t.Fatalf("redelivered webhook must be a no-op, got %v", err)
	}
}

func TestHandlePaymentApprovedUnknownCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewPaymentWebhookUseCase(campaigns, discardLogger())

	id := uuid.New()
	campaigns.EXPECT().GetByID(mock.Anything, id).Return(nil, nil)

	err := svc.HandlePaymentApproved(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
