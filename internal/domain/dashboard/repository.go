package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyAttendanceStats combines per-status counts and average hours for a day
type DailyAttendanceStats struct {
	Present   int64
	Late      int64
	Absent    int64
	Fieldwork int64
	Health    int64
	Total     int64
	AvgHours  decimal.Decimal
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetDailyAttendanceStats returns all status counts for a day in a single query
	GetDailyAttendanceStats(ctx context.Context, date time.Time) (*DailyAttendanceStats, error)
}
