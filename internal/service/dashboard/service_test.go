package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	leaveservice "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	employees     *fakes.EmployeeRepository
	attendance    *fakes.AttendanceRepository
	messages      *fakes.MessageRepository
	announcements *fakes.AnnouncementRepository
	performance   *fakes.PerformanceRepository
	clock         clock.Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return &fixture{
		employees: fakes.NewEmployeeRepository(
			employee.Employee{ID: "EMP001", FirstName: "Ana", LastName: "Reyes", EmpStatus: employee.EmpStatusRegular},
			employee.Employee{ID: "EMP002", FirstName: "Ben", LastName: "Cruz", EmpStatus: employee.EmpStatusJobOrder},
			employee.Employee{ID: "EMP003", FirstName: "Cara", LastName: "Santos", EmpStatus: employee.EmpStatusRegular, IsArchived: true},
		),
		attendance:    fakes.NewAttendanceRepository(),
		messages:      fakes.NewMessageRepository(),
		announcements: &fakes.AnnouncementRepository{},
		performance:   fakes.NewPerformanceRepository(),
		clock:         clock.Fixed{At: time.Date(2025, time.March, 10, 9, 30, 0, 0, loc)},
	}
}

func (f *fixture) service() *DashboardServiceImpl {
	leaveSvc := leaveservice.NewLeaveService(f.employees, f.attendance, leaveservice.NewQuotaCalculator(), f.clock)
	svc := NewDashboardService(
		fakes.NewDashboardRepository(f.attendance),
		f.employees,
		f.attendance,
		f.messages,
		f.announcements,
		f.performance,
		leaveSvc,
		f.clock,
	)
	return svc.(*DashboardServiceImpl)
}

func (f *fixture) record(employeeID string, day time.Time, status attendance.Status, hours string) {
	f.attendance.Put(attendance.Record{
		EmployeeID:  employeeID,
		Date:        day,
		Status:      status,
		HoursWorked: decimal.RequireFromString(hours),
	})
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0, percentOf(0, 0))
	assert.Equal(t, 33, percentOf(1, 3))
	assert.Equal(t, 66, percentOf(2, 3))
	assert.Equal(t, 100, percentOf(4, 4))
}

func TestGetAdminDashboard(t *testing.T) {
	f := newFixture(t)
	today := clock.Today(f.clock.Now())
	f.record("EMP001", today, attendance.StatusPresent, "8.00")
	f.record("EMP002", today, attendance.StatusLate, "6.50")
	f.record("EMP003", today, attendance.StatusAbsent, "0")
	f.record("EMP001", today.AddDate(0, 0, -1), attendance.StatusLate, "7.00")

	ctx := context.Background()
	_, err := f.messages.Create(ctx, message.Message{Text: "help", Status: message.StatusPending})
	require.NoError(t, err)
	_, err = f.messages.Create(ctx, message.Message{Text: "done", Status: message.StatusRead})
	require.NoError(t, err)

	resp, err := f.service().GetAdminDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, int64(2), resp.EmployeeCount)
	assert.Equal(t, int64(1), resp.PendingMessages)
	assert.Equal(t, int64(1), resp.TodayCounts.Present)
	assert.Equal(t, int64(1), resp.TodayCounts.Late)
	assert.Equal(t, int64(1), resp.TodayCounts.Absent)
	assert.Equal(t, 33, resp.TodayPercentages.Present)
	assert.Equal(t, 33, resp.TodayPercentages.Late)
	assert.Equal(t, 0, resp.TodayPercentages.Health)
}

func TestGetAdminDashboard_NoRecords(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service().GetAdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.TodayCounts)
	assert.Zero(t, resp.TodayPercentages)
}

func TestGetTimeTracking(t *testing.T) {
	f := newFixture(t)
	today := clock.Today(f.clock.Now())
	f.record("EMP001", today, attendance.StatusPresent, "8.00")
	f.record("EMP002", today, attendance.StatusHealth, "0")
	f.record("EMP003", today, attendance.StatusLate, "7.25")
	for i := 1; i <= 12; i++ {
		f.record("EMP001", today.AddDate(0, 0, -i), attendance.StatusPresent, "8.00")
	}

	resp, err := f.service().GetTimeTracking(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TodayPresent)
	assert.Equal(t, int64(1), resp.TodayLate)
	assert.Equal(t, int64(1), resp.TodayOnLeave)
	assert.Equal(t, "5.08", resp.TodayAvgHours)
	require.Len(t, resp.RecentLogs, 10)
	assert.Equal(t, "2025-03-10", resp.RecentLogs[0].Date)
}

func TestGetTimeTracking_Empty(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service().GetTimeTracking(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.TodayAvgHours)
	assert.NotNil(t, resp.RecentLogs)
	assert.Empty(t, resp.RecentLogs)
}

func TestGetEmployeeDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := clock.Today(f.clock.Now())

	for i := 0; i < 7; i++ {
		_, err := f.announcements.Create(ctx, message.Announcement{Title: "Notice", Body: "Body"})
		require.NoError(t, err)
	}
	f.record("EMP001", today, attendance.StatusPresent, "0")
	f.record("EMP001", today.AddDate(0, 0, -3), attendance.StatusLate, "7.00")
	f.record("EMP001", today.AddDate(0, 0, -4), attendance.StatusAbsent, "0")

	sum, err := f.performance.CreateSummary(ctx, performance.WeeklySummary{
		EmployeeID: "EMP001",
		WeekStart:  today.AddDate(0, 0, -6),
		WeekEnd:    today,
	})
	require.NoError(t, err)
	_, err = f.performance.CreateActivity(ctx, performance.WeeklyActivity{SummaryID: sum.ID, Description: "Filing"})
	require.NoError(t, err)
	_, err = f.performance.CreateActivity(ctx, performance.WeeklyActivity{SummaryID: sum.ID, Description: "Audit", IsDone: true})
	require.NoError(t, err)

	resp, err := f.service().GetEmployeeDashboard(ctx, "EMP001")
	require.NoError(t, err)

	assert.Equal(t, "Ana Reyes", resp.FullName)
	assert.Len(t, resp.Announcements, 5)
	require.NotNil(t, resp.TodayAttendance)
	assert.Equal(t, "present", resp.TodayAttendance.Status)
	assert.Equal(t, 1, resp.Leave.Lates)
	assert.Equal(t, 1, resp.Leave.Absents)
	assert.Equal(t, 15, resp.Leave.SickRemaining)
	require.Len(t, resp.PendingActivities, 1)
	assert.Equal(t, "Filing", resp.PendingActivities[0].Description)
}

func TestGetEmployeeDashboard_NoRecordToday(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service().GetEmployeeDashboard(context.Background(), "EMP002")
	require.NoError(t, err)

	assert.Nil(t, resp.TodayAttendance)
	assert.Empty(t, resp.Announcements)
	assert.Empty(t, resp.PendingActivities)
	assert.Equal(t, 0, resp.Leave.SickAnnual)
}

func TestGetEmployeeDashboard_UnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.service().GetEmployeeDashboard(context.Background(), "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
