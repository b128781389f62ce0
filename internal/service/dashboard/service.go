package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

const (
	recentLogLimit         = 10
	dashboardAnnouncements = 5
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employeeRepo     employee.EmployeeRepository
	attendanceRepo   attendance.AttendanceRepository
	messageRepo      message.MessageRepository
	announcementRepo message.AnnouncementRepository
	performanceRepo  performance.PerformanceRepository
	leaveService     leave.LeaveService
	clock            clock.Clock
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	messageRepo message.MessageRepository,
	announcementRepo message.AnnouncementRepository,
	performanceRepo performance.PerformanceRepository,
	leaveService leave.LeaveService,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		employeeRepo:        employeeRepo,
		attendanceRepo:      attendanceRepo,
		messageRepo:         messageRepo,
		announcementRepo:    announcementRepo,
		performanceRepo:     performanceRepo,
		leaveService:        leaveService,
		clock:               clk,
	}
}

// percentOf truncates like integer division; total is never below 1.
func percentOf(n, total int64) int {
	if total < 1 {
		total = 1
	}
	return int(n * 100 / total)
}

// GetAdminDashboard runs its three lookups in parallel.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	today := clock.Today(s.clock.Now())

	var (
		employeeCount   int64
		pendingMessages int64
		stats           *dashboard.DailyAttendanceStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employeeCount, err = s.employeeRepo.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pendingMessages, err = s.messageRepo.CountByStatus(gCtx, message.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending messages: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats, err = s.DashboardRepository.GetDailyAttendanceStats(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to get daily attendance stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := stats.Present + stats.Late + stats.Absent + stats.Fieldwork + stats.Health

	return &dashboard.AdminDashboardResponse{
		Date:            today.Format(clock.DateLayout),
		EmployeeCount:   employeeCount,
		PendingMessages: pendingMessages,
		TodayCounts: dashboard.StatusBreakdown{
			Present:   stats.Present,
			Late:      stats.Late,
			Absent:    stats.Absent,
			Fieldwork: stats.Fieldwork,
			Health:    stats.Health,
		},
		TodayPercentages: dashboard.StatusPercentages{
			Present:   percentOf(stats.Present, total),
			Late:      percentOf(stats.Late, total),
			Absent:    percentOf(stats.Absent, total),
			Fieldwork: percentOf(stats.Fieldwork, total),
			Health:    percentOf(stats.Health, total),
		},
	}, nil
}

func (s *DashboardServiceImpl) GetTimeTracking(ctx context.Context) (*dashboard.TimeTrackingResponse, error) {
	today := clock.Today(s.clock.Now())

	var (
		stats  *dashboard.DailyAttendanceStats
		recent []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.DashboardRepository.GetDailyAttendanceStats(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to get daily attendance stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = s.attendanceRepo.ListRecent(gCtx, recentLogLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent attendance: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logs := make([]attendance.AttendanceResponse, 0, len(recent))
	for _, r := range recent {
		logs = append(logs, attendance.NewAttendanceResponse(r, s.clock.Location()))
	}

	return &dashboard.TimeTrackingResponse{
		Date:          today.Format(clock.DateLayout),
		TodayPresent:  stats.Present,
		TodayLate:     stats.Late,
		TodayOnLeave:  stats.Fieldwork + stats.Health,
		TodayAvgHours: stats.AvgHours.StringFixed(2),
		RecentLogs:    logs,
	}, nil
}

// GetEmployeeDashboard fails with employee.ErrEmployeeNotFound before any
// parallel work starts.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboardResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	today := clock.Today(s.clock.Now())

	var (
		announcements []message.Announcement
		record        *attendance.Record
		balance       leave.BalanceResponse
		pending       []performance.WeeklyActivity
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		announcements, err = s.announcementRepo.ListActive(gCtx, dashboardAnnouncements)
		if err != nil {
			return fmt.Errorf("failed to list announcements: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		record, err = s.attendanceRepo.GetByEmployeeAndDate(gCtx, emp.ID, today)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		balance, err = s.leaveService.GetBalance(gCtx, emp.ID)
		return err
	})

	g.Go(func() error {
		var err error
		pending, err = s.performanceRepo.ListPendingActivities(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to list pending activities: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.EmployeeDashboardResponse{
		EmployeeID:        emp.ID,
		FullName:          emp.FullName(),
		Announcements:     make([]message.AnnouncementResponse, 0, len(announcements)),
		Leave:             balance,
		PendingActivities: make([]performance.ActivityResponse, 0, len(pending)),
	}
	for _, a := range announcements {
		resp.Announcements = append(resp.Announcements, message.NewAnnouncementResponse(a))
	}
	if record != nil {
		r := attendance.NewAttendanceResponse(*record, s.clock.Location())
		resp.TodayAttendance = &r
	}
	for _, a := range pending {
		resp.PendingActivities = append(resp.PendingActivities, performance.NewActivityResponse(a))
	}
	return resp, nil
}
