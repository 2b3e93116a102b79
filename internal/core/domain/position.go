package domain

import (
	"time"

	"github.com/google/uuid"
)

// Position is a single immutable GPS ping. Rows are append-only; ordering
// is by Ts, never by arrival order. (assignment_id, ts) is unique and
// duplicate submissions are dropped on insert.
type Position struct {
	ID           int64
	AssignmentID uuid.UUID
	DriverID     uuid.UUID
	Lat          float64
	Lon          float64
	Ts           time.Time
	Speed        *float64 // km/h as reported by the device, if any
}

// ValidCoordinates reports whether the point lies inside the WGS84 range.
// Out-of-range points are skipped before any distance math.
func (p Position) ValidCoordinates() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DailyMetric is one rollup row per (assignment, calendar day). The
// aggregator upserts it, so recomputing a day overwrites instead of
// accumulating.
type DailyMetric struct {
	AssignmentID        uuid.UUID
	Day                 time.Time // midnight UTC
	KilometersDriven    float64
	TimeInMotionSeconds int64
}
