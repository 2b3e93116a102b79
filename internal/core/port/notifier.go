package port

import (
	"context"

	"github.com/google/uuid"
)

// Event kinds emitted to external collaborators (push delivery and the
// wallet ledger consume these; neither is part of this core).
const (
	EventRandomProofDue  = "proof.random_due"
	EventFinalProofDue   = "proof.final_due"
	EventInstallApproved = "install.approved"
	EventInstallRejected = "install.rejected"
	EventFraudFlagged    = "fraud.flagged"
	EventFraudDismissed  = "fraud.dismissed"
	EventPayoutProcessed = "payout.processed"
)

// DriverEvent is a notification addressed to a driver about their
// assignment.
type DriverEvent struct {
	Kind         string    `json:"kind"`
	DriverID     uuid.UUID `json:"driver_id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	Message      string    `json:"message,omitempty"`
}

// Notifier delivers driver events to the outside world. Delivery is best
// effort: callers log failures and never roll back business state over
// them.
type Notifier interface {
	Notify(ctx context.Context, event DriverEvent) error
}
