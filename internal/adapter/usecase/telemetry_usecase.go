package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
	"drivead/internal/geo"
)

const (
	// maxSpeedKmh is the spoofing ceiling: no street vehicle moves faster.
	maxSpeedKmh = 300.0

	// minElapsedHours (~0.7s) is the resolution floor below which the speed
	// check is skipped to avoid division by near-zero. The point itself is
	// still persisted.
	minElapsedHours = 0.0002
)

// TelemetryUseCase validates and persists batches of GPS pings and flags
// assignments whose movement is physically implausible.
type TelemetryUseCase struct {
	drivers     port.DriverRepository
	assignments port.AssignmentRepository
	positions   port.PositionRepository
	alerts      port.FraudAlertRepository
	notifier    port.Notifier
	logger      *slog.Logger

	// locks serializes ingestion per assignment; two interleaved batches
	// for the same assignment could otherwise both pass the speed check on
	// a stale anchor.
	locks stripedMutex
}

// NewTelemetryUseCase wires the ingestion pipeline.
func NewTelemetryUseCase(
	drivers port.DriverRepository,
	assignments port.AssignmentRepository,
	positions port.PositionRepository,
	alerts port.FraudAlertRepository,
	notifier port.Notifier,
	logger *slog.Logger,
) *TelemetryUseCase {
	return &TelemetryUseCase{
		drivers:     drivers,
		assignments: assignments,
		positions:   positions,
		alerts:      alerts,
		notifier:    notifier,
		logger:      logger,
	}
}

// IngestBatch processes the pings in submitted order (not re-sorted by
// timestamp) against the driver's telemetry-accepting assignment. Points
// with out-of-range coordinates are skipped. A pair implying more than
// maxSpeedKmh flags the assignment as fraud and aborts the batch; points
// accepted before the violation remain persisted.
func (u *TelemetryUseCase) IngestBatch(ctx context.Context, userID uuid.UUID, pings []port.BatchPing) (port.IngestResult, error) {
	driver, err := u.drivers.GetByUserID(ctx, userID)
	if err != nil {
		return port.IngestResult{}, fmt.Errorf("resolve driver: %w", err)
	}
	if driver == nil {
		// A token can outlive the driver profile; treat like any other
		// stale submission.
		u.logger.Debug("telemetry from user without driver profile", slog.String("user_id", userID.String()))
		return port.IngestResult{Message: "no active campaign"}, nil
	}

	assignment, err := u.assignments.GetCurrentByDriver(ctx, driver.ID)
	if err != nil {
		return port.IngestResult{}, fmt.Errorf("resolve assignment: %w", err)
	}
	if assignment == nil || !assignment.Status.AcceptsTelemetry() {
		// Devices keep flushing buffered pings after a campaign ends; this
		// is not an error, but it is logged so client bugs stay visible.
		u.logger.Debug("no telemetry-accepting assignment, batch discarded",
			slog.String("driver_id", driver.ID.String()),
			slog.Int("pings", len(pings)))
		return port.IngestResult{Message: "no active campaign"}, nil
	}

	unlock := u.locks.lock(assignment.ID)
	defer unlock()

	// Re-read under the lock: a concurrent batch may have flagged the
	// assignment between the first read and lock acquisition.
	assignment, err = u.assignments.GetByID(ctx, assignment.ID)
	if err != nil {
		return port.IngestResult{}, fmt.Errorf("reload assignment: %w", err)
	}
	if assignment == nil || !assignment.Status.AcceptsTelemetry() {
		return port.IngestResult{Message: "no active campaign"}, nil
	}

	prev, err := u.positions.LastByDriver(ctx, driver.ID)
	if err != nil {
		return port.IngestResult{}, fmt.Errorf("load last position: %w", err)
	}

	accepted := make([]domain.Position, 0, len(pings))
	for _, p := range pings {
		point := domain.Position{
			AssignmentID: assignment.ID,
			DriverID:     driver.ID,
			Lat:          p.Lat,
			Lon:          p.Lon,
			Ts:           p.Timestamp.UTC(),
			Speed:        p.Speed,
		}
		if !point.ValidCoordinates() {
			continue
		}

		if prev != nil {
			elapsedHours := point.Ts.Sub(prev.Ts).Hours()
			if elapsedHours > minElapsedHours {
				distanceKm := geo.DistanceKm(prev.Lat, prev.Lon, point.Lat, point.Lon)
				speedKmh := distanceKm / elapsedHours
				if speedKmh > maxSpeedKmh {
					return u.flagSpoofing(ctx, assignment, driver.ID, speedKmh, accepted)
				}
			}
		}

		accepted = append(accepted, point)
		prev = &accepted[len(accepted)-1]
	}

	var inserted int64
	if len(accepted) > 0 {
		inserted, err = u.positions.BulkInsert(ctx, accepted)
		if err != nil {
			return port.IngestResult{}, fmt.Errorf("store positions: %w", err)
		}
	}
	return port.IngestResult{Accepted: inserted}, nil
}

// flagSpoofing persists the points accepted before the violation, moves
// the assignment to fraud and records the alert. The guarded Flag write
// makes a second detector converge on a no-op.
func (u *TelemetryUseCase) flagSpoofing(ctx context.Context, a *domain.Assignment, driverID uuid.UUID, speedKmh float64, accepted []domain.Position) (port.IngestResult, error) {
	u.logger.Warn("gps spoofing detected",
		slog.String("assignment_id", a.ID.String()),
		slog.Float64("speed_kmh", speedKmh))

	var inserted int64
	if len(accepted) > 0 {
		var err error
		inserted, err = u.positions.BulkInsert(ctx, accepted)
		if err != nil {
			return port.IngestResult{}, fmt.Errorf("store positions before flag: %w", err)
		}
	}

	alert := &domain.FraudAlert{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Reason:       domain.FraudReasonSpeed,
		Details:      fmt.Sprintf("implied speed %.0f km/h exceeds %.0f km/h", speedKmh, maxSpeedKmh),
	}
	flagged, err := u.alerts.Flag(ctx, alert)
	if err != nil {
		return port.IngestResult{}, fmt.Errorf("flag assignment: %w", err)
	}
	if flagged {
		if err := u.notifier.Notify(ctx, port.DriverEvent{
			Kind:         port.EventFraudFlagged,
			DriverID:     driverID,
			AssignmentID: a.ID,
			Message:      "suspicious movement detected, telemetry suspended",
		}); err != nil {
			u.logger.Error("notify fraud flag", slog.Any("error", err))
		}
	}

	return port.IngestResult{
		Accepted: inserted,
		Fraud:    true,
		Message:  "suspicious activity detected, batch rejected",
	}, nil
}

// stripedMutex provides per-assignment mutual exclusion without keeping a
// lock object per id. Collisions across stripes only cost spurious
// serialization, never correctness.
type stripedMutex struct {
	shards [64]sync.Mutex
}

func (s *stripedMutex) lock(id uuid.UUID) func() {
	m := &s.shards[int(id[0])&(len(s.shards)-1)]
	m.Lock()
	return m.Unlock
}
