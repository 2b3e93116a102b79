package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
	"drivead/internal/geo"
)

const (
	// inactivityThreshold is the maximum telemetry silence before an
	// active assignment is flagged as fraud.
	inactivityThreshold = 24 * time.Hour

	// randomProofProbability is the daily chance of drawing a random
	// spot-check for an assignment with no outstanding obligation.
	randomProofProbability = 0.10

	// motionFloorKmh separates driving from GPS jitter while parked. Gaps
	// between consecutive pings slower than this do not count as time in
	// motion.
	motionFloorKmh = 3.0
)

// JobsUseCase holds the scheduled fan-out duties and the idempotent
// handlers executed by the queue workers. Every handler tolerates
// re-delivery: metric upserts overwrite, status writes are guarded by the
// expected current value.
type JobsUseCase struct {
	campaigns   port.CampaignRepository
	assignments port.AssignmentRepository
	positions   port.PositionRepository
	metrics     port.MetricRepository
	alerts      port.FraudAlertRepository
	queue       port.JobQueue
	notifier    port.Notifier
	logger      *slog.Logger

	// randFloat is the draw source, injectable for deterministic tests.
	randFloat func() float64
	now       func() time.Time
}

// NewJobsUseCase wires the background job logic.
func NewJobsUseCase(
	campaigns port.CampaignRepository,
	assignments port.AssignmentRepository,
	positions port.PositionRepository,
	metrics port.MetricRepository,
	alerts port.FraudAlertRepository,
	queue port.JobQueue,
	notifier port.Notifier,
	logger *slog.Logger,
) *JobsUseCase {
	return &JobsUseCase{
		campaigns:   campaigns,
		assignments: assignments,
		positions:   positions,
		metrics:     metrics,
		alerts:      alerts,
		queue:       queue,
		notifier:    notifier,
		logger:      logger,
		randFloat:   rand.Float64,
		now:         time.Now,
	}
}

// telemetryStatuses is the status set scanned by the fan-out duties.
var telemetryStatuses = []domain.AssignmentStatus{domain.AssignmentActive}

// EnqueueDailyMetrics publishes one rollup job per telemetry-accepting
// assignment for the previous calendar day.
func (u *JobsUseCase) EnqueueDailyMetrics(ctx context.Context, now time.Time) error {
	yesterday := now.UTC().AddDate(0, 0, -1).Format(time.DateOnly)

	assignments, err := u.assignments.ListByStatuses(ctx, telemetryStatuses)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}
	for _, a := range assignments {
		job := port.DailyMetricsJob{AssignmentID: a.ID.String(), Date: yesterday}
		if err := u.queue.Publish(ctx, port.QueueDailyMetrics, job); err != nil {
			return fmt.Errorf("enqueue metrics job for %s: %w", a.ID, err)
		}
	}
	u.logger.Info("daily metrics jobs enqueued",
		slog.Int("count", len(assignments)),
		slog.String("date", yesterday))
	return nil
}

// EnqueueInactivityChecks publishes one inactivity job per
// telemetry-accepting assignment.
func (u *JobsUseCase) EnqueueInactivityChecks(ctx context.Context) error {
	assignments, err := u.assignments.ListByStatuses(ctx, telemetryStatuses)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}
	for _, a := range assignments {
		job := port.InactivityJob{AssignmentID: a.ID.String()}
		if err := u.queue.Publish(ctx, port.QueueInactivity, job); err != nil {
			return fmt.Errorf("enqueue inactivity job for %s: %w", a.ID, err)
		}
	}
	u.logger.Info("inactivity jobs enqueued", slog.Int("count", len(assignments)))
	return nil
}

// CalculateDailyMetrics rolls one assignment's pings for a day into a
// DailyMetric: kilometers as the sum of great-circle distances between
// consecutive pairs, motion seconds as the sum of gaps driven faster than
// the motion floor. The upsert makes the whole job idempotent.
func (u *JobsUseCase) CalculateDailyMetrics(ctx context.Context, assignmentID uuid.UUID, day time.Time) error {
	day = day.UTC().Truncate(24 * time.Hour)
	points, err := u.positions.ListForDay(ctx, assignmentID, day)
	if err != nil {
		return fmt.Errorf("load positions: %w", err)
	}

	var (
		totalKm       float64
		motionSeconds float64
	)
	for i := 1; i < len(points); i++ {
		prevPt, pt := points[i-1], points[i]
		distKm := geo.DistanceKm(prevPt.Lat, prevPt.Lon, pt.Lat, pt.Lon)
		totalKm += distKm

		elapsed := pt.Ts.Sub(prevPt.Ts)
		if elapsed > 0 && distKm/elapsed.Hours() >= motionFloorKmh {
			motionSeconds += elapsed.Seconds()
		}
	}

	metric := domain.DailyMetric{
		AssignmentID:        assignmentID,
		Day:                 day,
		KilometersDriven:    totalKm,
		TimeInMotionSeconds: int64(motionSeconds),
	}
	if err := u.metrics.Upsert(ctx, metric); err != nil {
		return fmt.Errorf("upsert daily metric: %w", err)
	}
	u.logger.Info("daily metric calculated",
		slog.String("assignment_id", assignmentID.String()),
		slog.String("day", day.Format(time.DateOnly)),
		slog.Float64("km", totalKm))
	return nil
}

// CheckInactivity flags the assignment as fraud when its last ping (or,
// for a driver who never pinged, the install approval) is older than the
// inactivity threshold.
func (u *JobsUseCase) CheckInactivity(ctx context.Context, assignmentID uuid.UUID) error {
	a, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("resolve assignment: %w", err)
	}
	if a == nil || !a.Status.AcceptsTelemetry() {
		// Already finished, flagged or removed since the job was enqueued.
		return nil
	}

	last, err := u.positions.LastByAssignment(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("load last position: %w", err)
	}

	now := u.now().UTC()
	var anchor time.Time
	switch {
	case last != nil:
		anchor = last.Ts
	case a.InstalledAt != nil:
		anchor = *a.InstalledAt
	default:
		// Active without installedAt should not happen; nothing to measure.
		return nil
	}

	gap := now.Sub(anchor)
	if gap <= inactivityThreshold {
		return nil
	}

	u.logger.Warn("inactivity fraud detected",
		slog.String("assignment_id", assignmentID.String()),
		slog.Duration("gap", gap))
	alert := &domain.FraudAlert{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		Reason:       domain.FraudReasonInactivity,
		Details:      fmt.Sprintf("no telemetry for %s", gap.Round(time.Minute)),
	}
	flagged, err := u.alerts.Flag(ctx, alert)
	if err != nil {
		return fmt.Errorf("flag assignment: %w", err)
	}
	if flagged {
		if err := u.notifier.Notify(ctx, port.DriverEvent{
			Kind:         port.EventFraudFlagged,
			DriverID:     a.DriverID,
			AssignmentID: a.ID,
			Message:      "no recent telemetry, assignment under review",
		}); err != nil {
			u.logger.Error("notify inactivity flag", slog.Any("error", err))
		}
	}
	return nil
}

// CompleteCycles raises the final-proof obligation on active assignments
// whose individual cycle (installedAt + campaign duration) has elapsed.
func (u *JobsUseCase) CompleteCycles(ctx context.Context, now time.Time) error {
	assignments, err := u.assignments.ListByStatuses(ctx, []domain.AssignmentStatus{domain.AssignmentActive})
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}

	campaignCache := make(map[uuid.UUID]*domain.Campaign)
	for _, a := range assignments {
		if a.ProofStatus != domain.ProofNone || a.InstalledAt == nil {
			continue
		}
		campaign, ok := campaignCache[a.CampaignID]
		if !ok {
			campaign, err = u.campaigns.GetByID(ctx, a.CampaignID)
			if err != nil {
				return fmt.Errorf("resolve campaign %s: %w", a.CampaignID, err)
			}
			campaignCache[a.CampaignID] = campaign
		}
		if campaign == nil {
			continue
		}
		cycleEnd, ok := a.CycleEndsAt(campaign.DurationDays)
		if !ok || now.Before(cycleEnd) {
			continue
		}
		if err := u.raiseFinalProof(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// ExpireCampaigns finishes active campaigns past their end date and raises
// the final-proof obligation on all their still-active assignments,
// regardless of individual cycle progress.
func (u *JobsUseCase) ExpireCampaigns(ctx context.Context, now time.Time) error {
	expired, err := u.campaigns.ListActiveExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("list expired campaigns: %w", err)
	}
	for _, c := range expired {
		// The campaign flips only after every obligation is raised: a run
		// that dies mid-fan-out leaves it active, so the next sweep lists
		// it again and the guarded proof writes no-op for assignments
		// already handled.
		assignments, err := u.assignments.ListActiveByCampaign(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("list campaign assignments: %w", err)
		}
		for _, a := range assignments {
			if a.ProofStatus == domain.ProofPendingFinal {
				continue
			}
			if err := u.raiseFinalProof(ctx, a); err != nil {
				return err
			}
		}

		ok, err := u.campaigns.UpdateStatus(ctx, c.ID, domain.CampaignActive, domain.CampaignFinished)
		if err != nil {
			return fmt.Errorf("finish campaign %s: %w", c.ID, err)
		}
		if !ok {
			// Another run got here first.
			continue
		}
		u.logger.Info("campaign expired", slog.String("campaign_id", c.ID.String()))
	}
	return nil
}

func (u *JobsUseCase) raiseFinalProof(ctx context.Context, a domain.Assignment) error {
	ok, err := u.assignments.SetProofStatus(ctx, a.ID, a.ProofStatus, domain.ProofPendingFinal)
	if err != nil {
		return fmt.Errorf("raise final proof on %s: %w", a.ID, err)
	}
	if !ok {
		return nil
	}
	if err := u.notifier.Notify(ctx, port.DriverEvent{
		Kind:         port.EventFinalProofDue,
		DriverID:     a.DriverID,
		AssignmentID: a.ID,
		Message:      "cycle complete, submit your closing photo",
	}); err != nil {
		u.logger.Error("notify final proof", slog.Any("error", err))
	}
	return nil
}

// DrawRandomProofs rolls the daily spot-check dice for every assignment
// with no outstanding obligation.
func (u *JobsUseCase) DrawRandomProofs(ctx context.Context) error {
	assignments, err := u.assignments.ListByStatuses(ctx, telemetryStatuses)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}
	drawn := 0
	for _, a := range assignments {
		if a.ProofStatus != domain.ProofNone {
			continue
		}
		if u.randFloat() >= randomProofProbability {
			continue
		}
		ok, err := u.assignments.SetProofStatus(ctx, a.ID, domain.ProofNone, domain.ProofPendingRandom)
		if err != nil {
			return fmt.Errorf("raise random proof on %s: %w", a.ID, err)
		}
		if !ok {
			continue
		}
		drawn++
		if err := u.notifier.Notify(ctx, port.DriverEvent{
			Kind:         port.EventRandomProofDue,
			DriverID:     a.DriverID,
			AssignmentID: a.ID,
			Message:      "spot check: submit a photo of the installed ad",
		}); err != nil {
			u.logger.Error("notify random proof", slog.Any("error", err))
		}
	}
	u.logger.Info("random proof draw finished",
		slog.Int("candidates", len(assignments)),
		slog.Int("drawn", drawn))
	return nil
}
