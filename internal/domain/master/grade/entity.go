package grade

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryGrade maps a government pay-scale tier to its monthly salary.
type SalaryGrade struct {
	Grade         int
	MonthlySalary decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
