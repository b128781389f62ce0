package fakes

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/dashboard"
	"github.com/shopspring/decimal"
)

// DashboardRepository aggregates over the records held by an AttendanceRepository.
type DashboardRepository struct {
	Attendance *AttendanceRepository
}

func NewDashboardRepository(att *AttendanceRepository) *DashboardRepository {
	return &DashboardRepository{Attendance: att}
}

func (r *DashboardRepository) GetDailyAttendanceStats(ctx context.Context, date time.Time) (*dashboard.DailyAttendanceStats, error) {
	records, err := r.Attendance.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	stats := &dashboard.DailyAttendanceStats{AvgHours: decimal.Zero}
	sum := decimal.Zero
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusFieldwork:
			stats.Fieldwork++
		case attendance.StatusHealth:
			stats.Health++
		}
		stats.Total++
		sum = sum.Add(rec.HoursWorked)
	}
	if stats.Total > 0 {
		stats.AvgHours = sum.Div(decimal.NewFromInt(stats.Total))
	}
	return stats, nil
}
