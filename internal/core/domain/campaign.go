package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the campaign lifecycle, independent of the assignments
// running under it. Campaigns start as drafts, become pending_approval once
// the advertiser's payment clears and go active on admin approval.
type CampaignStatus string

const (
	CampaignDraft           CampaignStatus = "draft"
	CampaignPendingApproval CampaignStatus = "pending_approval"
	CampaignActive          CampaignStatus = "active"
	CampaignFinished        CampaignStatus = "finished"
	CampaignRejected        CampaignStatus = "rejected"
	CampaignCancelled       CampaignStatus = "cancelled"
)

// Campaign represents an advertiser's vehicle-ad campaign. Budget and the
// per-driver payout are stored in integer units (e.g. cents).
type Campaign struct {
	ID               uuid.UUID
	AdvertiserID     uuid.UUID
	Title            string
	Budget           int64
	PayoutPerDriver  int64
	NumCars          int
	RequiredCategory int // minimum vehicle category rank
	DurationDays     int
	EndAt            time.Time
	Status           CampaignStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Expired reports whether the campaign's absolute end date has passed.
func (c *Campaign) Expired(now time.Time) bool {
	return now.After(c.EndAt)
}
