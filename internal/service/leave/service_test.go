package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaCalculator_SickCredit(t *testing.T) {
	calc := NewQuotaCalculator()
	cases := []struct {
		lates, absents int
		deducted       int
		remaining      int
	}{
		{0, 0, 0, 15},
		{3, 0, 0, 15},
		{2, 2, 1, 14},
		{5, 4, 2, 13},
		{60, 0, 15, 0},
		{100, 100, 15, 0},
	}
	for _, c := range cases {
		got := calc.SickCredit(true, c.lates, c.absents)
		assert.Equal(t, 15, got.Annual)
		assert.Equal(t, c.deducted, got.Deducted, "lates=%d absents=%d", c.lates, c.absents)
		assert.Equal(t, c.remaining, got.Remaining, "lates=%d absents=%d", c.lates, c.absents)
	}
}

func TestQuotaCalculator_SickCredit_NeverNegative(t *testing.T) {
	calc := NewQuotaCalculator()
	for n := 0; n <= 200; n++ {
		got := calc.SickCredit(true, n, n/2)
		assert.LessOrEqual(t, got.Deducted, 15)
		assert.GreaterOrEqual(t, got.Remaining, 0)
	}
}

func TestQuotaCalculator_JobOrder(t *testing.T) {
	calc := NewQuotaCalculator()
	assert.Equal(t, 0, calc.SickCredit(false, 8, 8).Annual)
	assert.Equal(t, 0, calc.SickCredit(false, 8, 8).Remaining)
	assert.Equal(t, 0, calc.VacationQuota(false))
	assert.Equal(t, 15, calc.VacationQuota(true))
}

func TestLeaveService_GetBalance(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Manila")
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, loc) }

	emps := fakes.NewEmployeeRepository(
		employee.Employee{ID: "EMP001", EmpStatus: employee.EmpStatusRegular},
		employee.Employee{ID: "EMP002", EmpStatus: employee.EmpStatusJobOrder},
	)
	atts := fakes.NewAttendanceRepository(
		attendance.Record{EmployeeID: "EMP001", Date: time.Date(2024, 12, 30, 0, 0, 0, 0, loc), Status: attendance.StatusLate},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 2), Status: attendance.StatusLate},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 3), Status: attendance.StatusLate},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 6), Status: attendance.StatusAbsent},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 7), Status: attendance.StatusAbsent},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 8), Status: attendance.StatusLate},
		attendance.Record{EmployeeID: "EMP001", Date: day(1, 9), Status: attendance.StatusPresent},
		attendance.Record{EmployeeID: "EMP002", Date: day(1, 9), Status: attendance.StatusLate},
	)
	svc := NewLeaveService(emps, atts, NewQuotaCalculator(), clock.Fixed{At: day(2, 1).Add(9 * time.Hour)})
	ctx := context.Background()

	bal, err := svc.GetBalance(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, 2025, bal.Year)
	assert.Equal(t, 3, bal.Lates)
	assert.Equal(t, 2, bal.Absents)
	assert.Equal(t, 5, bal.Occurrences)
	assert.Equal(t, 1, bal.SickDeducted)
	assert.Equal(t, 14, bal.SickRemaining)
	assert.Equal(t, 15, bal.VacationAnnual)

	bal, err = svc.GetBalance(ctx, "EMP002")
	require.NoError(t, err)
	assert.False(t, bal.IsRegular)
	assert.Equal(t, 0, bal.SickAnnual)
	assert.Equal(t, 0, bal.VacationAnnual)

	_, err = svc.GetBalance(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
