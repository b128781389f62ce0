package leave

import (
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/leave"
)

type QuotaCalculator struct {
}

func NewQuotaCalculator() *QuotaCalculator {
	return &QuotaCalculator{}
}

// SickCredit deducts one day per OccurrencesPerDeduction combined lates and
// absents. Job Order employees have no allocation.
func (c *QuotaCalculator) SickCredit(isRegular bool, lates, absents int) leave.SickCredit {
	if !isRegular {
		return leave.SickCredit{}
	}

	occurrences := lates + absents
	if occurrences < 0 {
		occurrences = 0
	}

	deducted := occurrences / leave.OccurrencesPerDeduction
	if deducted > leave.AnnualSickLeaveDays {
		deducted = leave.AnnualSickLeaveDays
	}

	return leave.SickCredit{
		Annual:    leave.AnnualSickLeaveDays,
		Deducted:  deducted,
		Remaining: leave.AnnualSickLeaveDays - deducted,
	}
}

// VacationQuota is the yearly vacation allocation.
func (c *QuotaCalculator) VacationQuota(isRegular bool) int {
	if !isRegular {
		return 0
	}
	return leave.AnnualVacationLeaveDays
}
