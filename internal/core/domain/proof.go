package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the admin review state shared by all proof kinds.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// InstallProof carries the before/after photos a driver submits to prove
// the ad was installed. Approval activates the assignment; rejection sends
// the driver back to scheduling.
type InstallProof struct {
	ID             uuid.UUID
	AssignmentID   uuid.UUID
	PhotoBeforeURL string
	PhotoAfterURL  string
	Status         ReviewStatus
	Notes          string
	CreatedAt      time.Time
	ReviewedAt     *time.Time
}

// PeriodicProofType distinguishes the random spot-check from the final
// close-out proof.
type PeriodicProofType string

const (
	PeriodicProofRandom PeriodicProofType = "random"
	PeriodicProofFinal  PeriodicProofType = "final"
)

// PeriodicProof is a single photo submitted against an outstanding proof
// obligation (random draw or cycle close-out).
type PeriodicProof struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Type         PeriodicProofType
	PhotoURL     string
	Status       ReviewStatus
	Notes        string
	CreatedAt    time.Time
	ReviewedAt   *time.Time
}

// FraudReason records which detector raised an alert.
type FraudReason string

const (
	FraudReasonSpeed      FraudReason = "speed"
	FraudReasonInactivity FraudReason = "inactivity"
)

// FraudResolution is the admin's verdict on an alert.
type FraudResolution string

const (
	FraudDismiss  FraudResolution = "dismiss"
	FraudPenalize FraudResolution = "penalize"
)

// FraudAlert is written in the same transaction that flags an assignment as
// fraud, and resolved by an admin to either reinstate or remove it.
type FraudAlert struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Reason       FraudReason
	Details      string
	Notes        string
	Resolution   *FraudResolution
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}
