package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the business layer. The HTTP adapter maps them to
// status codes; everything else surfaces as an internal error.
var (
	// ErrNotFound marks a missing entity. Hard error for admin flows;
	// telemetry ingestion treats a missing assignment as a silent no-op
	// instead of returning this.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation against the wrong current state:
	// an illegal status transition, re-reviewing a resolved proof, or a
	// violated uniqueness/capacity invariant.
	ErrConflict = errors.New("conflict")

	// ErrPermission marks an actor lacking the role or ownership required
	// for the action.
	ErrPermission = errors.New("permission denied")

	// ErrValidation marks malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrCampaignFull is returned when a campaign already has numCars
	// non-terminal assignments.
	ErrCampaignFull = fmt.Errorf("%w: campaign has no free seats", ErrConflict)

	// ErrDriverBusy is returned when the driver already holds a
	// non-terminal assignment.
	ErrDriverBusy = fmt.Errorf("%w: driver already has an active assignment", ErrConflict)
)

// TransitionError reports a rejected state-machine edge. It unwraps to
// ErrConflict so callers can match on the kind.
type TransitionError struct {
	From AssignmentStatus
	To   AssignmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal assignment transition %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrConflict }

// NewTransitionError builds a TransitionError for the rejected edge.
func NewTransitionError(from, to AssignmentStatus) error {
	return &TransitionError{From: from, To: to}
}
