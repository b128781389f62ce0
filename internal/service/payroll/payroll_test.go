package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	domainpayroll "github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manila, _ = time.LoadLocation("Asia/Manila")

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, manila)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ===== PERIODS =====

func TestCurrentPeriod(t *testing.T) {
	p := CurrentPeriod(date("2025-02-15"))
	assert.Equal(t, "2025-02-01_2025-02-15", p.Value())

	p = CurrentPeriod(date("2025-02-16"))
	assert.Equal(t, "2025-02-16_2025-02-28", p.Value())

	p = CurrentPeriod(date("2024-02-20"))
	assert.Equal(t, "2024-02-16_2024-02-29", p.Value())
}

func TestHalfMonthPeriods(t *testing.T) {
	values := func(ps []domainpayroll.Period) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Value())
		}
		return out
	}

	t.Run("from hire month through current", func(t *testing.T) {
		got := HalfMonthPeriods(datePtr("2025-01-10"), date("2025-03-20").Add(9*time.Hour))
		assert.Equal(t, []string{
			"2025-01-01_2025-01-15",
			"2025-01-16_2025-01-31",
			"2025-02-01_2025-02-15",
			"2025-02-16_2025-02-28",
			"2025-03-01_2025-03-15",
			"2025-03-16_2025-03-31",
		}, values(got))
	})

	t.Run("hire after mid-month skips first half", func(t *testing.T) {
		got := HalfMonthPeriods(datePtr("2025-01-20"), date("2025-02-05"))
		assert.Equal(t, []string{
			"2025-01-16_2025-01-31",
			"2025-02-01_2025-02-15",
		}, values(got))
	})

	t.Run("no hire date", func(t *testing.T) {
		got := HalfMonthPeriods(nil, date("2025-02-05"))
		assert.Equal(t, []string{"2025-02-01_2025-02-15"}, values(got))
	})

	t.Run("hired today", func(t *testing.T) {
		got := HalfMonthPeriods(datePtr("2025-02-15"), date("2025-02-15"))
		assert.Equal(t, []string{"2025-02-01_2025-02-15"}, values(got))
	})

	t.Run("stored hire date in a zone behind UTC", func(t *testing.T) {
		newYork, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		hire := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)

		got := HalfMonthPeriods(&hire, time.Date(2025, time.February, 20, 10, 0, 0, 0, newYork))
		assert.Equal(t, []string{
			"2025-01-16_2025-01-31",
			"2025-02-01_2025-02-15",
			"2025-02-16_2025-02-28",
		}, values(got))
	})
}

func TestHalfMonthPeriods_CoverHireThroughToday(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	offsets := []int{0, 1, 14, 15, 16, 29, 31, 45, 59, 100, 366, 400}
	for _, loc := range []*time.Location{manila, newYork, time.UTC} {
		for hire := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC); hire.Year() < 2025 || hire.Month() <= time.March; hire = hire.AddDate(0, 0, 3) {
			y, m, d := hire.Date()
			hireLocal := time.Date(y, m, d, 0, 0, 0, 0, loc)
			wantFirst := 1
			if d > 15 {
				wantFirst = 16
			}

			for _, offset := range offsets {
				today := hireLocal.AddDate(0, 0, offset).Add(13 * time.Hour)
				hireDate := hire
				got := HalfMonthPeriods(&hireDate, today)
				name := loc.String() + " hire " + hire.Format("2006-01-02") + " today " + today.Format("2006-01-02")

				require.NotEmpty(t, got, name)
				assert.Equal(t, time.Date(y, m, wantFirst, 0, 0, 0, 0, loc), got[0].Start, name)
				assert.Equal(t, CurrentPeriod(today), got[len(got)-1], name)

				for i, p := range got {
					assert.Contains(t, []int{1, 16}, p.Start.Day(), name)
					assert.Equal(t, p.Start.Month(), p.End.Month(), name)
					if p.Start.Day() == 1 {
						assert.Equal(t, 15, p.End.Day(), name)
					} else {
						assert.Equal(t, lastDayOfMonth(p.Start), p.End.Day(), name)
					}
					if i > 0 {
						assert.Equal(t, got[i-1].End.AddDate(0, 0, 1), p.Start, name)
					}
				}
			}
		}
	}
}

func TestSelectPeriod(t *testing.T) {
	options := HalfMonthPeriods(datePtr("2025-01-01"), date("2025-02-20"))
	latest := options[len(options)-1]

	assert.Equal(t, latest, SelectPeriod(options, "", manila))
	assert.Equal(t, latest, SelectPeriod(options, "garbage", manila))
	assert.Equal(t, latest, SelectPeriod(options, "2024-01-01_2024-01-15", manila))
	assert.Equal(t, "2025-01-16_2025-01-31", SelectPeriod(options, "2025-01-16_2025-01-31", manila).Value())
}

func TestParsePeriod(t *testing.T) {
	_, err := ParsePeriod("2025-01-16_2025-01-01", manila)
	assert.ErrorIs(t, err, domainpayroll.ErrInvalidPeriod)

	p, err := ParsePeriod("2025-01-01_2025-01-15", manila)
	require.NoError(t, err)
	assert.Equal(t, "Jan 01, 2025 – Jan 15, 2025", p.Label())
}

// ===== RATES =====

func TestParseGradeNumber(t *testing.T) {
	cases := map[string]int{"SG-18": 18, "18": 18, "Grade 7 step 2": 7}
	for in, want := range cases {
		n, ok := ParseGradeNumber(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, n, in)
	}
	_, ok := ParseGradeNumber("none")
	assert.False(t, ok)
}

func TestDailyRateFromMonthly(t *testing.T) {
	assert.True(t, dec("1982.18").Equal(DailyRateFromMonthly(dec("43608"))))
	assert.True(t, dec("543.27").Equal(DailyRateFromMonthly(dec("11952"))))
}

func TestRateResolver(t *testing.T) {
	ctx := context.Background()
	resolver := NewRateResolver(fakes.NewGradeRepository(map[int]string{18: "43608"}))

	t.Run("regular with configured grade", func(t *testing.T) {
		res, err := resolver.Resolve(ctx, employee.Employee{ID: "EMP001", EmpStatus: employee.EmpStatusRegular, SalaryGrade: "SG-18"})
		require.NoError(t, err)
		assert.True(t, dec("1982.18").Equal(res.DailyRate))
		require.NotNil(t, res.MonthlySalary)
		assert.True(t, dec("43608").Equal(*res.MonthlySalary))
		assert.Empty(t, res.Warnings)
	})

	t.Run("regular with unknown grade", func(t *testing.T) {
		res, err := resolver.Resolve(ctx, employee.Employee{ID: "EMP002", EmpStatus: employee.EmpStatusRegular, SalaryGrade: "SG-40"})
		require.NoError(t, err)
		assert.True(t, res.DailyRate.IsZero())
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("job order without rate", func(t *testing.T) {
		res, err := resolver.Resolve(ctx, employee.Employee{ID: "EMP003", EmpStatus: employee.EmpStatusJobOrder})
		require.NoError(t, err)
		assert.True(t, res.DailyRate.IsZero())
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("job order with rate", func(t *testing.T) {
		rate := dec("650")
		res, err := resolver.Resolve(ctx, employee.Employee{ID: "EMP004", EmpStatus: employee.EmpStatusJobOrder, JODailyRate: &rate})
		require.NoError(t, err)
		assert.True(t, rate.Equal(res.DailyRate))
		assert.Nil(t, res.MonthlySalary)
	})
}

// ===== BREAKDOWN =====

func TestComputeBreakdown_Regular(t *testing.T) {
	b := ComputeBreakdown(dec("1982.18"), 11, false)

	assert.Equal(t, "21803.98", b.BasicPay.StringFixed(2))
	assert.Equal(t, "23803.98", b.TotalEarnings.StringFixed(2))
	assert.Equal(t, "3246.98", b.TotalDeductions.StringFixed(2))
	assert.Equal(t, "20557.00", b.NetPay.StringFixed(2))
}

func TestComputeBreakdown_JobOrder(t *testing.T) {
	b := ComputeBreakdown(dec("650"), 10, true)

	assert.Equal(t, "6500.00", b.BasicPay.StringFixed(2))
	assert.True(t, b.RATA.IsZero())
	assert.True(t, b.TotalDeductions.IsZero())
	assert.Equal(t, "6500.00", b.NetPay.StringFixed(2))
}

func TestComputeBreakdown_ZeroDays(t *testing.T) {
	b := ComputeBreakdown(dec("1982.18"), 0, false)
	assert.Equal(t, "-1246.98", b.NetPay.StringFixed(2))
}

// ===== SERVICE =====

func newTestService(now time.Time) (*PayrollServiceImpl, *fakes.EmployeeRepository, *fakes.AttendanceRepository) {
	emps := fakes.NewEmployeeRepository(
		employee.Employee{
			ID: "EMP001", FirstName: "Ana", LastName: "Reyes",
			EmpStatus: employee.EmpStatusRegular, SalaryGrade: "SG-18",
			DateHired: datePtr("2024-12-01"),
		},
	)
	atts := fakes.NewAttendanceRepository()
	svc := NewPayrollService(
		emps, atts,
		NewRateResolver(fakes.NewGradeRepository(map[int]string{18: "43608"})),
		clock.Fixed{At: now},
		"City Hall",
	).(*PayrollServiceImpl)
	return svc, emps, atts
}

func TestPayrollService_GetPayslip(t *testing.T) {
	ctx := context.Background()
	svc, _, atts := newTestService(date("2025-01-20").Add(10 * time.Hour))

	statuses := []attendance.Status{
		attendance.StatusPresent, attendance.StatusLate, attendance.StatusFieldwork,
		attendance.StatusHealth, attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusPresent, attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusPresent, attendance.StatusPresent,
	}
	for i, st := range statuses {
		atts.Put(attendance.Record{EmployeeID: "EMP001", Date: date("2025-01-01").AddDate(0, 0, i), Status: st})
	}
	atts.Put(attendance.Record{EmployeeID: "EMP001", Date: date("2025-01-14"), Status: attendance.StatusAbsent})
	atts.Put(attendance.Record{EmployeeID: "EMP001", Date: date("2025-01-16"), Status: attendance.StatusPresent})

	slip, err := svc.GetPayslip(ctx, "EMP001", "2025-01-01_2025-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01_2025-01-15", slip.SelectedPeriod.Value)
	assert.Equal(t, 11, slip.Breakdown.PayableDays)
	assert.Equal(t, "20557.00", slip.Breakdown.NetPay.StringFixed(2))
	assert.False(t, slip.IsJobOrder)
	assert.Len(t, slip.Periods, 4)

	latest, err := svc.GetPayslip(ctx, "EMP001", "bogus")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-16_2025-01-31", latest.SelectedPeriod.Value)
	assert.Equal(t, 1, latest.Breakdown.PayableDays)
}

func TestPayrollService_GetPayslip_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(date("2025-01-20"))
	_, err := svc.GetPayslip(context.Background(), "EMP999", "")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_GetPayslipPDF(t *testing.T) {
	svc, _, _ := newTestService(date("2025-01-20"))
	out, name, err := svc.GetPayslipPDF(context.Background(), "EMP001", "")
	require.NoError(t, err)
	assert.Equal(t, "payslip_EMP001_2025-01-16_2025-01-31.pdf", name)
	assert.NotEmpty(t, out)
}

func TestPayrollService_Register(t *testing.T) {
	ctx := context.Background()
	svc, emps, atts := newTestService(date("2025-01-20"))
	rate := dec("500")
	_, err := emps.Create(ctx, employee.Employee{ID: "EMP002", FirstName: "Ben", LastName: "Cruz", EmpStatus: employee.EmpStatusJobOrder, JODailyRate: &rate})
	require.NoError(t, err)
	atts.Put(attendance.Record{EmployeeID: "EMP002", Date: date("2025-01-17"), Status: attendance.StatusPresent})

	reg, err := svc.GetRegister(ctx, "")
	require.NoError(t, err)
	require.Len(t, reg.Rows, 2)
	assert.Equal(t, "EMP002", reg.Rows[1].Employee.ID)
	assert.Equal(t, "500.00", reg.Rows[1].Breakdown.NetPay.StringFixed(2))

	_, err = svc.GetRegister(ctx, "not-a-period")
	assert.ErrorIs(t, err, domainpayroll.ErrInvalidPeriod)

	out, name, err := svc.ExportRegister(ctx, "2025-01-16_2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "payroll_register_2025-01-16_2025-01-31.xlsx", name)
	assert.NotEmpty(t, out)
}
