package payroll

import (
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ComputeBreakdown turns a daily rate and payable-day count into a pay
// breakdown. Job Order employees carry no allowances or deductions.
func ComputeBreakdown(dailyRate decimal.Decimal, payableDays int, isJobOrder bool) payroll.Breakdown {
	b := payroll.Breakdown{
		DailyRate:   dailyRate.Round(2),
		PayableDays: payableDays,
		BasicPay:    dailyRate.Mul(decimal.NewFromInt(int64(payableDays))).Round(2),
		RATA:        decimal.Zero,
		GSIS:        decimal.Zero,
		PhilHealth:  decimal.Zero,
		PagIBIG:     decimal.Zero,
		GSISLoan:    decimal.Zero,
	}

	if !isJobOrder {
		b.RATA = payroll.RATA
		b.GSIS = payroll.GSIS
		b.PhilHealth = payroll.PhilHealth
		b.PagIBIG = payroll.PagIBIG
		b.GSISLoan = payroll.GSISLoan
	}

	b.TotalEarnings = b.BasicPay.Add(b.RATA).Round(2)
	b.TotalDeductions = b.GSIS.Add(b.PhilHealth).Add(b.PagIBIG).Add(b.GSISLoan).Round(2)
	b.NetPay = b.TotalEarnings.Sub(b.TotalDeductions).Round(2)
	return b
}
