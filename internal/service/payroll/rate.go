package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var gradeNumberRegex = regexp.MustCompile(`\d+`)

// ParseGradeNumber extracts the first integer in a grade label such as "SG-18".
func ParseGradeNumber(label string) (int, bool) {
	match := gradeNumberRegex.FindString(label)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DailyRateFromMonthly divides by the standard working days, rounded to centavos.
func DailyRateFromMonthly(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Div(decimal.NewFromInt(payroll.WorkingDaysPerMonth)).Round(2)
}

type RateResolver struct {
	gradeRepo grade.GradeRepository
}

func NewRateResolver(gradeRepo grade.GradeRepository) *RateResolver {
	return &RateResolver{gradeRepo: gradeRepo}
}

// Resolve returns the employee's daily rate. Missing configuration yields a
// zero rate with a warning instead of an error.
func (r *RateResolver) Resolve(ctx context.Context, emp employee.Employee) (payroll.RateResolution, error) {
	if emp.IsJobOrder() {
		if emp.JODailyRate == nil {
			warning := "job order daily rate is not set; using zero rate"
			slog.Warn(warning, "employee_id", emp.ID)
			return payroll.RateResolution{DailyRate: decimal.Zero, Warnings: []string{warning}}, nil
		}
		return payroll.RateResolution{DailyRate: *emp.JODailyRate}, nil
	}

	n, ok := ParseGradeNumber(emp.SalaryGrade)
	if !ok {
		warning := fmt.Sprintf("salary grade %q has no grade number; using zero rate", emp.SalaryGrade)
		slog.Warn(warning, "employee_id", emp.ID)
		return payroll.RateResolution{DailyRate: decimal.Zero, Warnings: []string{warning}}, nil
	}

	sg, err := r.gradeRepo.GetByGrade(ctx, n)
	if err != nil {
		if errors.Is(err, grade.ErrGradeNotFound) {
			warning := fmt.Sprintf("salary grade %d is not configured; using zero rate", n)
			slog.Warn(warning, "employee_id", emp.ID, "grade", n)
			return payroll.RateResolution{DailyRate: decimal.Zero, Grade: &n, Warnings: []string{warning}}, nil
		}
		return payroll.RateResolution{}, fmt.Errorf("failed to get salary grade: %w", err)
	}

	monthly := sg.MonthlySalary
	return payroll.RateResolution{
		DailyRate:     DailyRateFromMonthly(monthly),
		MonthlySalary: &monthly,
		Grade:         &n,
	}, nil
}
