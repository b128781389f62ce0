package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a half-month pay window: the 1st-15th or the 16th-last day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Value is the query-string form "YYYY-MM-DD_YYYY-MM-DD".
func (p Period) Value() string {
	return p.Start.Format("2006-01-02") + "_" + p.End.Format("2006-01-02")
}

func (p Period) Label() string {
	return p.Start.Format("Jan 02, 2006") + " – " + p.End.Format("Jan 02, 2006")
}

func (p Period) Equal(o Period) bool {
	return p.Start.Equal(o.Start) && p.End.Equal(o.End)
}

// WorkingDaysPerMonth is the government standard divisor for daily rates.
const WorkingDaysPerMonth = 22

// Fixed semi-monthly amounts for Regular employees.
var (
	RATA       = decimal.RequireFromString("2000.00")
	GSIS       = decimal.RequireFromString("1394.28")
	PhilHealth = decimal.RequireFromString("387.30")
	PagIBIG    = decimal.RequireFromString("809.84")
	GSISLoan   = decimal.RequireFromString("655.56")
)

// RateResolution is the daily rate derived from grade or job-order terms.
type RateResolution struct {
	DailyRate     decimal.Decimal
	MonthlySalary *decimal.Decimal
	Grade         *int
	Warnings      []string
}

type Breakdown struct {
	DailyRate       decimal.Decimal
	PayableDays     int
	BasicPay        decimal.Decimal
	RATA            decimal.Decimal
	TotalEarnings   decimal.Decimal
	GSIS            decimal.Decimal
	PhilHealth      decimal.Decimal
	PagIBIG         decimal.Decimal
	GSISLoan        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}
