package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus is the lifecycle state of a driver-campaign pairing. The
// set is closed: transitions are validated through CanTransition and any
// edge outside the table is rejected with ErrConflict by the usecases.
type AssignmentStatus string

const (
	// AssignmentApplied means the driver applied and holds a seat on the
	// campaign but has not yet scheduled the sticker installation.
	AssignmentApplied AssignmentStatus = "applied"
	// AssignmentAccepted is the fallback state after an install proof was
	// rejected (or a rejected application was retried); the driver may
	// schedule again.
	AssignmentAccepted AssignmentStatus = "accepted"
	// AssignmentScheduled means an installer visit is booked.
	AssignmentScheduled AssignmentStatus = "scheduled"
	// AssignmentAwaitingInstallApproval means before/after photos were
	// submitted and an admin review is pending.
	AssignmentAwaitingInstallApproval AssignmentStatus = "awaiting_install_approval"
	// AssignmentActive means the ad is installed and the vehicle is expected
	// to stream telemetry.
	AssignmentActive AssignmentStatus = "active"
	// AssignmentFraud means the anti-fraud pipeline flagged the assignment;
	// telemetry is refused until an admin resolves the alert.
	AssignmentFraud AssignmentStatus = "fraud"
	// AssignmentRemovalRequested means the driver asked to exit the campaign.
	AssignmentRemovalRequested AssignmentStatus = "removal_requested"
	// AssignmentRemoved is terminal: the sticker was (or must be) taken off.
	AssignmentRemoved AssignmentStatus = "removed"
	// AssignmentRejected is terminal for seat accounting, but an admin may
	// move it back to accepted as a retry.
	AssignmentRejected AssignmentStatus = "rejected"
	// AssignmentFinished is terminal: the cycle completed and the payout was
	// processed.
	AssignmentFinished AssignmentStatus = "finished"
)

// Terminal reports whether the status releases the campaign seat and the
// driver's one-assignment slot.
func (s AssignmentStatus) Terminal() bool {
	switch s {
	case AssignmentRemoved, AssignmentRejected, AssignmentFinished:
		return true
	}
	return false
}

// AcceptsTelemetry reports whether position batches for the assignment are
// processed. Anything else silently discards incoming pings.
func (s AssignmentStatus) AcceptsTelemetry() bool {
	return s == AssignmentActive
}

// CanTransition reports whether the edge s -> to exists in the lifecycle.
// The zero-to-applied edge (creation) is handled by the apply flow, not here.
func (s AssignmentStatus) CanTransition(to AssignmentStatus) bool {
	switch s {
	case AssignmentApplied:
		return to == AssignmentScheduled || to == AssignmentRejected
	case AssignmentAccepted:
		return to == AssignmentScheduled
	case AssignmentScheduled:
		return to == AssignmentAwaitingInstallApproval
	case AssignmentAwaitingInstallApproval:
		return to == AssignmentActive || to == AssignmentAccepted
	case AssignmentActive:
		return to == AssignmentFraud || to == AssignmentRemovalRequested || to == AssignmentFinished
	case AssignmentFraud:
		return to == AssignmentActive || to == AssignmentRemoved
	case AssignmentRemovalRequested:
		return to == AssignmentRemoved
	case AssignmentRejected:
		return to == AssignmentAccepted
	case AssignmentRemoved, AssignmentFinished:
		return false
	}
	return false
}

// ProofStatus is the proof obligation sub-flag carried alongside the main
// status. Raising it never changes the status itself.
type ProofStatus string

const (
	ProofNone          ProofStatus = "none"
	ProofPendingRandom ProofStatus = "pending_random"
	ProofPendingFinal  ProofStatus = "pending_final"
)

// Assignment pairs one driver and one vehicle with one campaign for the
// duration of a cycle.
type Assignment struct {
	ID                 uuid.UUID
	DriverID           uuid.UUID
	CampaignID         uuid.UUID
	VehicleID          uuid.UUID
	Status             AssignmentStatus
	ProofStatus        ProofStatus
	PayoutAmount       int64 // integer currency units
	InstallerID        *uuid.UUID
	ScheduledInstallAt *time.Time
	InstalledAt        *time.Time
	PayoutProcessedAt  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CycleEndsAt returns the end of the driver's individual cycle, or false
// when the installation has not been approved yet.
func (a *Assignment) CycleEndsAt(durationDays int) (time.Time, bool) {
	if a.InstalledAt == nil {
		return time.Time{}, false
	}
	return a.InstalledAt.AddDate(0, 0, durationDays), true
}
