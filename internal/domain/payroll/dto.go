package payroll

import (
	"github.com/shopspring/decimal"
)

type PeriodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func NewPeriodOption(p Period) PeriodOption {
	return PeriodOption{Value: p.Value(), Label: p.Label()}
}

type PayslipEmployee struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	SalaryGrade string `json:"salary_grade"`
	EmpStatus   string `json:"emp_status"`
}

type BreakdownResponse struct {
	DailyRate       decimal.Decimal `json:"daily_rate"`
	PayableDays     int             `json:"payable_days"`
	BasicPay        decimal.Decimal `json:"basic_pay"`
	RATA            decimal.Decimal `json:"rata"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	GSIS            decimal.Decimal `json:"gsis"`
	PhilHealth      decimal.Decimal `json:"philhealth"`
	PagIBIG         decimal.Decimal `json:"pagibig"`
	GSISLoan        decimal.Decimal `json:"gsis_loan"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

func NewBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		DailyRate:       b.DailyRate,
		PayableDays:     b.PayableDays,
		BasicPay:        b.BasicPay,
		RATA:            b.RATA,
		TotalEarnings:   b.TotalEarnings,
		GSIS:            b.GSIS,
		PhilHealth:      b.PhilHealth,
		PagIBIG:         b.PagIBIG,
		GSISLoan:        b.GSISLoan,
		TotalDeductions: b.TotalDeductions,
		NetPay:          b.NetPay,
	}
}

type PayslipResponse struct {
	Employee       PayslipEmployee   `json:"employee"`
	IsJobOrder     bool              `json:"is_job_order"`
	Periods        []PeriodOption    `json:"periods"`
	SelectedPeriod PeriodOption      `json:"selected_period"`
	MonthlySalary  *decimal.Decimal  `json:"monthly_salary,omitempty"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	Warnings       []string          `json:"warnings,omitempty"`
}

type RegisterRow struct {
	Employee  PayslipEmployee   `json:"employee"`
	Breakdown BreakdownResponse `json:"breakdown"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// RegisterResponse lists every active employee's pay for one period.
type RegisterResponse struct {
	Period        PeriodOption    `json:"period"`
	Rows          []RegisterRow   `json:"rows"`
	TotalBasicPay decimal.Decimal `json:"total_basic_pay"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
}
