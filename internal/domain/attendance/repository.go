package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetOrCreateForUpdate returns the (employee, date) record, inserting an
	// empty one if needed, and row-locks it. Must run inside a transaction.
	GetOrCreateForUpdate(ctx context.Context, employeeID string, date time.Time, defaultStatus Status) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update persists the record unless it is already completed
	Update(ctx context.Context, record Record) error

	List(ctx context.Context, filter AttendanceFilter) ([]Record, int64, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)

	// CountDistinctDates counts distinct dates in [start, end] whose status is in statuses
	CountDistinctDates(ctx context.Context, employeeID string, start, end time.Time, statuses []Status) (int, error)

	// CountByStatus counts records per status in [start, end]
	CountByStatus(ctx context.Context, employeeID string, start, end time.Time) (map[Status]int, error)
}
