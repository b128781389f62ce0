package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/report"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	rates            *RateResolver
	clock            clock.Clock
	organizationName string
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	rates *RateResolver,
	clk clock.Clock,
	organizationName string,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		rates:                rates,
		clock:                clk,
		organizationName:     organizationName,
	}
}

func newPayslipEmployee(emp employee.Employee) payroll.PayslipEmployee {
	return payroll.PayslipEmployee{
		ID:          emp.ID,
		FullName:    emp.FullName(),
		Position:    emp.Position,
		Department:  emp.Department,
		SalaryGrade: emp.SalaryGrade,
		EmpStatus:   string(emp.EmpStatus),
	}
}

// compute resolves the rate and counts payable days for one employee and period.
func (s *PayrollServiceImpl) compute(ctx context.Context, emp employee.Employee, period payroll.Period) (payroll.RateResolution, payroll.Breakdown, error) {
	rate, err := s.rates.Resolve(ctx, emp)
	if err != nil {
		return payroll.RateResolution{}, payroll.Breakdown{}, err
	}

	days, err := s.AttendanceRepository.CountDistinctDates(ctx, emp.ID, period.Start, period.End, attendance.PayableStatuses)
	if err != nil {
		return payroll.RateResolution{}, payroll.Breakdown{}, fmt.Errorf("failed to count payable days: %w", err)
	}

	return rate, ComputeBreakdown(rate.DailyRate, days, emp.IsJobOrder()), nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string, periodValue string) (payroll.PayslipResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	options := HalfMonthPeriods(emp.DateHired, s.clock.Now())
	selected := SelectPeriod(options, periodValue, s.clock.Location())

	rate, breakdown, err := s.compute(ctx, emp, selected)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	periods := make([]payroll.PeriodOption, 0, len(options))
	for _, p := range options {
		periods = append(periods, payroll.NewPeriodOption(p))
	}

	return payroll.PayslipResponse{
		Employee:       newPayslipEmployee(emp),
		IsJobOrder:     emp.IsJobOrder(),
		Periods:        periods,
		SelectedPeriod: payroll.NewPeriodOption(selected),
		MonthlySalary:  rate.MonthlySalary,
		Breakdown:      payroll.NewBreakdownResponse(breakdown),
		Warnings:       rate.Warnings,
	}, nil
}

// GetPayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslipPDF(ctx context.Context, employeeID string, periodValue string) ([]byte, string, error) {
	slip, err := s.GetPayslip(ctx, employeeID, periodValue)
	if err != nil {
		return nil, "", err
	}

	b := slip.Breakdown
	earnings := []report.PayslipLine{{Label: "Basic pay", Amount: b.BasicPay.StringFixed(2)}}
	var deductions []report.PayslipLine
	if !slip.IsJobOrder {
		earnings = append(earnings, report.PayslipLine{Label: "RATA", Amount: b.RATA.StringFixed(2)})
		deductions = []report.PayslipLine{
			{Label: "GSIS", Amount: b.GSIS.StringFixed(2)},
			{Label: "PhilHealth", Amount: b.PhilHealth.StringFixed(2)},
			{Label: "Pag-IBIG", Amount: b.PagIBIG.StringFixed(2)},
			{Label: "GSIS loan", Amount: b.GSISLoan.StringFixed(2)},
		}
	}

	pdf, err := report.PayslipPDF(report.Payslip{
		OrganizationName: s.organizationName,
		EmployeeID:       slip.Employee.ID,
		EmployeeName:     slip.Employee.FullName,
		Position:         slip.Employee.Position,
		Department:       slip.Employee.Department,
		Category:         slip.Employee.EmpStatus,
		PeriodLabel:      slip.SelectedPeriod.Label,
		DailyRate:        b.DailyRate.StringFixed(2),
		PayableDays:      b.PayableDays,
		Earnings:         earnings,
		TotalEarnings:    b.TotalEarnings.StringFixed(2),
		Deductions:       deductions,
		TotalDeductions:  b.TotalDeductions.StringFixed(2),
		NetPay:           b.NetPay.StringFixed(2),
		Warnings:         slip.Warnings,
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip_%s_%s.pdf", slip.Employee.ID, slip.SelectedPeriod.Value)
	return pdf, filename, nil
}

// registerPeriod parses an explicit period; empty means the current half-month.
func (s *PayrollServiceImpl) registerPeriod(periodValue string) (payroll.Period, error) {
	if periodValue == "" {
		return CurrentPeriod(s.clock.Now()), nil
	}
	return ParsePeriod(periodValue, s.clock.Location())
}

// GetRegister implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRegister(ctx context.Context, periodValue string) (payroll.RegisterResponse, error) {
	period, err := s.registerPeriod(periodValue)
	if err != nil {
		return payroll.RegisterResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return payroll.RegisterResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := payroll.RegisterResponse{
		Period:        payroll.NewPeriodOption(period),
		Rows:          make([]payroll.RegisterRow, 0, len(employees)),
		TotalBasicPay: decimal.Zero,
		TotalNetPay:   decimal.Zero,
	}
	for _, emp := range employees {
		rate, breakdown, err := s.compute(ctx, emp, period)
		if err != nil {
			return payroll.RegisterResponse{}, err
		}
		resp.Rows = append(resp.Rows, payroll.RegisterRow{
			Employee:  newPayslipEmployee(emp),
			Breakdown: payroll.NewBreakdownResponse(breakdown),
			Warnings:  rate.Warnings,
		})
		resp.TotalBasicPay = resp.TotalBasicPay.Add(breakdown.BasicPay)
		resp.TotalNetPay = resp.TotalNetPay.Add(breakdown.NetPay)
	}

	slog.Info("payroll register computed", "period", period.Value(), "employees", len(resp.Rows))
	return resp, nil
}

// ExportRegister implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportRegister(ctx context.Context, periodValue string) ([]byte, string, error) {
	reg, err := s.GetRegister(ctx, periodValue)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(reg.Rows)+1)
	for _, r := range reg.Rows {
		b := r.Breakdown
		rows = append(rows, []interface{}{
			r.Employee.ID, r.Employee.FullName, r.Employee.EmpStatus, r.Employee.SalaryGrade,
			b.DailyRate.InexactFloat64(), b.PayableDays, b.BasicPay.InexactFloat64(), b.RATA.InexactFloat64(),
			b.TotalDeductions.InexactFloat64(), b.NetPay.InexactFloat64(),
		})
	}
	rows = append(rows, []interface{}{
		"TOTAL", "", "", "", "", "", reg.TotalBasicPay.InexactFloat64(), "", "", reg.TotalNetPay.InexactFloat64(),
	})

	out, err := report.Workbook(report.Sheet{
		Name: "Payroll Register",
		Headers: []string{
			"Employee ID", "Name", "Status", "Salary Grade",
			"Daily Rate", "Days Paid", "Basic Pay", "RATA", "Deductions", "Net Pay",
		},
		Rows: rows,
	})
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("payroll_register_%s.xlsx", reg.Period.Value), nil
}
