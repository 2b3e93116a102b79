package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

// PaymentWebhookUseCase reacts to the external payment gateway. An approved
// payment promotes the campaign from draft to pending_approval; activation
// itself stays an admin decision.
type PaymentWebhookUseCase struct {
	campaigns port.CampaignRepository
	logger    *slog.Logger
}

// NewPaymentWebhookUseCase wires the webhook handler.
func NewPaymentWebhookUseCase(campaigns port.CampaignRepository, logger *slog.Logger) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{campaigns: campaigns, logger: logger}
}

// HandlePaymentApproved promotes a draft campaign. Gateways redeliver
// webhooks, so a campaign past draft is a logged no-op rather than an
// error.
func (u *PaymentWebhookUseCase) HandlePaymentApproved(ctx context.Context, campaignID uuid.UUID) error {
	c, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("resolve campaign: %w", err)
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}

	ok, err := u.campaigns.UpdateStatus(ctx, campaignID, domain.CampaignDraft, domain.CampaignPendingApproval)
	if err != nil {
		return fmt.Errorf("promote campaign: %w", err)
	}
	if !ok {
		u.logger.Info("payment webhook for non-draft campaign ignored",
			slog.String("campaign_id", campaignID.String()),
			slog.String("status", string(c.Status)))
		return nil
	}
	u.logger.Info("campaign paid, pending approval", slog.String("campaign_id", campaignID.String()))
	return nil
}
