package leave

// Yearly allocations for Regular employees.
const (
	AnnualSickLeaveDays     = 15
	AnnualVacationLeaveDays = 15

	// OccurrencesPerDeduction late/absent records forfeit one sick day.
	OccurrencesPerDeduction = 4
)

// SickCredit is a derived balance; nothing is stored.
type SickCredit struct {
	Annual    int
	Deducted  int
	Remaining int
}
