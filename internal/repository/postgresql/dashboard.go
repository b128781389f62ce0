package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetDailyAttendanceStats returns all status counts and the average hours in single query
func (r *dashboardRepositoryImpl) GetDailyAttendanceStats(ctx context.Context, date time.Time) (*dashboard.DailyAttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) as present,
			COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0) as late,
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) as absent,
			COALESCE(SUM(CASE WHEN status = 'fieldwork' THEN 1 ELSE 0 END), 0) as fieldwork,
			COALESCE(SUM(CASE WHEN status = 'health' THEN 1 ELSE 0 END), 0) as health,
			COUNT(*) as total,
			COALESCE(AVG(hours_worked), 0) as avg_hours
		FROM attendance_records
		WHERE date = $1
	`

	var stats dashboard.DailyAttendanceStats
	err := q.QueryRow(ctx, query, date).Scan(
		&stats.Present, &stats.Late, &stats.Absent, &stats.Fieldwork, &stats.Health,
		&stats.Total, &stats.AvgHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily attendance stats: %w", err)
	}
	return &stats, nil
}
