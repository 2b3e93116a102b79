package domain

import (
	"time"

	"github.com/google/uuid"
)

// KycStatus is the verification state of a driver profile. Only approved
// drivers may apply for campaigns.
type KycStatus string

const (
	KycPending  KycStatus = "pending"
	KycApproved KycStatus = "approved"
	KycRejected KycStatus = "rejected"
)

// Driver is the driver profile attached to an authenticated user.
type Driver struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	KycStatus KycStatus
	CreatedAt time.Time
}

// Vehicle belongs to one driver. CategoryRank orders vehicles for campaign
// eligibility: a campaign with RequiredCategory n accepts rank >= n.
type Vehicle struct {
	ID           uuid.UUID
	DriverID     uuid.UUID
	Plate        string
	Model        string
	Year         int
	CategoryRank int
	CreatedAt    time.Time
}
