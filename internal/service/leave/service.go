package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	calculator *QuotaCalculator
	clock      clock.Clock
}

func NewLeaveService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	calculator *QuotaCalculator,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		calculator:           calculator,
		clock:                clk,
	}
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	today := clock.Today(s.clock.Now())
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())

	counts, err := s.AttendanceRepository.CountByStatus(ctx, emp.ID, yearStart, today)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	lates := counts[attendance.StatusLate]
	absents := counts[attendance.StatusAbsent]
	credit := s.calculator.SickCredit(emp.IsRegular(), lates, absents)

	return leave.BalanceResponse{
		Year:           today.Year(),
		IsRegular:      emp.IsRegular(),
		Lates:          lates,
		Absents:        absents,
		Occurrences:    lates + absents,
		SickAnnual:     credit.Annual,
		SickDeducted:   credit.Deducted,
		SickRemaining:  credit.Remaining,
		VacationAnnual: s.calculator.VacationQuota(emp.IsRegular()),
	}, nil
}
