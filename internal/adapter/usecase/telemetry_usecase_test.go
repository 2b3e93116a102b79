package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
	"drivead/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type telemetryFixture struct {
	drivers     *mocks.MockDriverRepository
	assignments *mocks.MockAssignmentRepository
	positions   *mocks.MockPositionRepository
	alerts      *mocks.MockFraudAlertRepository
	notifier    *mocks.MockNotifier
	svc         *TelemetryUseCase
}

func newTelemetryFixture(t *testing.T) *telemetryFixture {
	f := &telemetryFixture{
		drivers:     mocks.NewMockDriverRepository(t),
		assignments: mocks.NewMockAssignmentRepository(t),
		positions:   mocks.NewMockPositionRepository(t),
		alerts:      mocks.NewMockFraudAlertRepository(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	f.svc = NewTelemetryUseCase(f.drivers, f.assignments, f.positions, f.alerts, f.notifier, discardLogger())
	return f
}

// expectActiveAssignment wires the happy resolution path: user -> driver ->
// active assignment, re-read under the lock.
func (f *telemetryFixture) expectActiveAssignment(userID uuid.UUID) *domain.Assignment {
	driver := &domain.Driver{ID: uuid.New(), UserID: userID, KycStatus: domain.KycApproved}
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentActive}
	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)
	f.assignments.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)
	return a
}

func ping(lat, lon float64, ts time.Time) port.BatchPing {
	return port.BatchPing{Lat: lat, Lon: lon, Timestamp: ts}
}

func TestIngestBatchPersistsPlausiblePoints(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	a := f.expectActiveAssignment(userID)

	f.positions.EXPECT().LastByDriver(mock.Anything, a.DriverID).Return(nil, nil)

	var stored []domain.Position
	f.positions.EXPECT().
		BulkInsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, positions []domain.Position) {
			stored = positions
		}).
		Return(int64(3), nil)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// ~1.1 km per minute, roughly 66 km/h
	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(-23.5500, -46.6300, base),
		ping(-23.5400, -46.6300, base.Add(time.Minute)),
		ping(-23.5300, -46.6300, base.Add(2*time.Minute)),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if res.Fraud {
		t.Fatal("plausible batch flagged as fraud")
	}
	if res.Accepted != 3 {
		t.Fatalf("accepted = %d, want 3", res.Accepted)
	}
	if len(stored) != 3 {
		t.Fatalf("stored %d points, want 3", len(stored))
	}
	for _, p := range stored {
		if p.AssignmentID != a.ID {
			t.Fatalf("point bound to %s, want %s", p.AssignmentID, a.ID)
		}
	}
}

func TestIngestBatchFlagsImpossibleSpeed(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	a := f.expectActiveAssignment(userID)

	f.positions.EXPECT().LastByDriver(mock.Anything, a.DriverID).Return(nil, nil)

	// Points accepted before the violation must still be persisted.
	var stored []domain.Position
	f.positions.EXPECT().
		BulkInsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, positions []domain.Position) {
			stored = positions
		}).
		Return(int64(1), nil)

	f.alerts.EXPECT().
		Flag(mock.Anything, mock.AnythingOfType("*domain.FraudAlert")).
		Run(func(ctx context.Context, alert *domain.FraudAlert) {
			if alert.AssignmentID != a.ID {
				t.Errorf("alert on %s, want %s", alert.AssignmentID, a.ID)
			}
			if alert.Reason != domain.FraudReasonSpeed {
				t.Errorf("alert reason %s, want %s", alert.Reason, domain.FraudReasonSpeed)
			}
		}).
		Return(true, nil)
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).
		Return(nil)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// second pair implies ~157 km in one minute
	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(0, 0, base),
		ping(1, 1, base.Add(time.Minute)),
		ping(1.01, 1.01, base.Add(2*time.Minute)),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if !res.Fraud {
		t.Fatal("expected fraud result")
	}
	if res.Accepted != 1 {
		t.Fatalf("accepted = %d, want 1 (point before the violation)", res.Accepted)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d points, want 1", len(stored))
	}
}

func TestIngestBatchSkipsOutOfRangeCoordinates(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	a := f.expectActiveAssignment(userID)

	f.positions.EXPECT().LastByDriver(mock.Anything, a.DriverID).Return(nil, nil)

	var stored []domain.Position
	f.positions.EXPECT().
		BulkInsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, positions []domain.Position) {
			stored = positions
		}).
		Return(int64(2), nil)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(-23.55, -46.63, base),
		ping(120, -46.63, base.Add(time.Minute)), // out of range, skipped
		ping(-23.54, -46.63, base.Add(2*time.Minute)),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if res.Fraud {
		t.Fatal("skipped point must not feed the speed check")
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d points, want 2", len(stored))
	}
}

func TestIngestBatchSubSecondGapSkipsSpeedCheck(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	a := f.expectActiveAssignment(userID)

	f.positions.EXPECT().LastByDriver(mock.Anything, a.DriverID).Return(nil, nil)
	f.positions.EXPECT().BulkInsert(mock.Anything, mock.Anything).Return(int64(2), nil)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// huge jump inside half a second: below the resolution floor, both
	// points are kept and no fraud is raised
	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(0, 0, base),
		ping(1, 1, base.Add(500*time.Millisecond)),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if res.Fraud {
		t.Fatal("sub-second gap must not trigger the speed check")
	}
	if res.Accepted != 2 {
		t.Fatalf("accepted = %d, want 2", res.Accepted)
	}
}

func TestIngestBatchAnchorsOnLastStoredPosition(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	a := f.expectActiveAssignment(userID)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	last := &domain.Position{
		AssignmentID: a.ID,
		DriverID:     a.DriverID,
		Lat:          0,
		Lon:          0,
		Ts:           base,
	}
	f.positions.EXPECT().LastByDriver(mock.Anything, a.DriverID).Return(last, nil)
	f.alerts.EXPECT().Flag(mock.Anything, mock.AnythingOfType("*domain.FraudAlert")).Return(true, nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).Return(nil)

	// first new point is already impossible against the stored anchor, so
	// nothing gets inserted
	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(1, 1, base.Add(time.Minute)),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if !res.Fraud {
		t.Fatal("expected fraud against the stored anchor")
	}
	if res.Accepted != 0 {
		t.Fatalf("accepted = %d, want 0", res.Accepted)
	}
}

func TestIngestBatchDiscardsWithoutActiveAssignment(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	driver := &domain.Driver{ID: uuid.New(), UserID: userID}
	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(nil, nil)

	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(0, 0, time.Now()),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if res.Fraud || res.Accepted != 0 {
		t.Fatalf("expected silent discard, got %+v", res)
	}
}

func TestIngestBatchDiscardsForFlaggedAssignment(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	driver := &domain.Driver{ID: uuid.New(), UserID: userID}
	a := &domain.Assignment{ID: uuid.New(), DriverID: driver.ID, Status: domain.AssignmentFraud}
	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)
	f.assignments.EXPECT().GetCurrentByDriver(mock.Anything, driver.ID).Return(a, nil)

	res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
		ping(0, 0, time.Now()),
	})
	if err != nil {
		t.Fatalf("IngestBatch error: %v", err)
	}
	if res.Accepted != 0 {
		t.Fatalf("flagged assignment must not accept telemetry, got %+v", res)
	}
}

// Two batches for the same assignment must not both pass the speed check
// on a stale anchor: the second batch resolves the assignment before the
// first commits its fraud flag, then must observe the flag on the re-read
// under the lock. Channels pin the interleaving so the test is not timing
// dependent.
func TestIngestBatchSerializesPerAssignment(t *testing.T) {
	f := newTelemetryFixture(t)
	userID := uuid.New()
	driver := &domain.Driver{ID: uuid.New(), UserID: userID, KycStatus: domain.KycApproved}
	assignmentID := uuid.New()

	var mu sync.Mutex
	status := domain.AssignmentActive
	snapshot := func() *domain.Assignment {
		mu.Lock()
		defer mu.Unlock()
		return &domain.Assignment{ID: assignmentID, DriverID: driver.ID, Status: status}
	}

	firstFlagging := make(chan struct{}) // first batch is inside Flag, holding the lock
	secondResolved := make(chan struct{}) // second batch read the assignment pre-lock

	f.drivers.EXPECT().GetByUserID(mock.Anything, userID).Return(driver, nil)

	resolves := 0
	f.assignments.EXPECT().
		GetCurrentByDriver(mock.Anything, driver.ID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*domain.Assignment, error) {
			a := snapshot()
			resolves++
			if resolves == 2 {
				// the stale active snapshot is taken; let the flagger commit
				close(secondResolved)
			}
			return a, nil
		})
	f.assignments.EXPECT().
		GetByID(mock.Anything, assignmentID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*domain.Assignment, error) {
			return snapshot(), nil
		})
	f.positions.EXPECT().LastByDriver(mock.Anything, driver.ID).Return(nil, nil)
	f.positions.EXPECT().BulkInsert(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	f.alerts.EXPECT().
		Flag(mock.Anything, mock.AnythingOfType("*domain.FraudAlert")).
		RunAndReturn(func(ctx context.Context, alert *domain.FraudAlert) (bool, error) {
			close(firstFlagging)
			// the second batch has read the still-active assignment and is
			// now blocked on the per-assignment lock
			<-secondResolved
			mu.Lock()
			status = domain.AssignmentFraud
			mu.Unlock()
			return true, nil
		}).Once()
	f.notifier.EXPECT().Notify(mock.Anything, mock.AnythingOfType("port.DriverEvent")).Return(nil).Once()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	spoofDone := make(chan port.IngestResult, 1)
	go func() {
		res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
			ping(0, 0, base),
			ping(5, 0, base.Add(time.Minute)), // ~556 km in one minute
		})
		if err != nil {
			t.Errorf("spoofing batch error: %v", err)
		}
		spoofDone <- res
	}()

	<-firstFlagging
	plausibleDone := make(chan port.IngestResult, 1)
	go func() {
		res, err := f.svc.IngestBatch(context.Background(), userID, []port.BatchPing{
			ping(0, 0, base.Add(2*time.Minute)),
			ping(0.001, 0, base.Add(3*time.Minute)),
		})
		if err != nil {
			t.Errorf("plausible batch error: %v", err)
		}
		plausibleDone <- res
	}()

	spoof := <-spoofDone
	plausible := <-plausibleDone

	if !spoof.Fraud {
		t.Fatal("spoofing batch not flagged")
	}
	if plausible.Fraud {
		t.Fatal("second batch must be discarded, not re-flagged")
	}
	if plausible.Accepted != 0 {
		t.Fatalf("second batch accepted %d points against a flagged assignment", plausible.Accepted)
	}
}
