package dashboard

import (
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
)

// ========== ADMIN DASHBOARD ==========

type StatusBreakdown struct {
	Present   int64 `json:"present"`
	Late      int64 `json:"late"`
	Absent    int64 `json:"absent"`
	Fieldwork int64 `json:"fieldwork"`
	Health    int64 `json:"health"`
}

// StatusPercentages are integer shares of today's records.
type StatusPercentages struct {
	Present   int `json:"present"`
	Late      int `json:"late"`
	Absent    int `json:"absent"`
	Fieldwork int `json:"fieldwork"`
	Health    int `json:"health"`
}

type AdminDashboardResponse struct {
	Date             string            `json:"date"`
	EmployeeCount    int64             `json:"employee_count"`
	PendingMessages  int64             `json:"pending_messages"`
	TodayCounts      StatusBreakdown   `json:"today_counts"`
	TodayPercentages StatusPercentages `json:"today_percentages"`
}

// ========== TIME TRACKING ==========

type TimeTrackingResponse struct {
	Date          string                          `json:"date"`
	TodayPresent  int64                           `json:"today_present"`
	TodayLate     int64                           `json:"today_late"`
	TodayOnLeave  int64                           `json:"today_on_leave"`
	TodayAvgHours string                          `json:"today_avg_hours"`
	RecentLogs    []attendance.AttendanceResponse `json:"recent_logs"`
}

// ========== EMPLOYEE DASHBOARD ==========

type EmployeeDashboardResponse struct {
	EmployeeID        string                         `json:"employee_id"`
	FullName          string                         `json:"full_name"`
	Announcements     []message.AnnouncementResponse `json:"announcements"`
	TodayAttendance   *attendance.AttendanceResponse `json:"today_attendance,omitempty"`
	Leave             leave.BalanceResponse          `json:"leave"`
	PendingActivities []performance.ActivityResponse `json:"pending_activities"`
}
