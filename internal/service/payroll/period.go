package payroll

import (
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
)

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func day(t time.Time, d int) time.Time {
	return time.Date(t.Year(), t.Month(), d, 0, 0, 0, 0, t.Location())
}

// inRange reports lo <= t <= hi.
func inRange(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

// CurrentPeriod returns the half-month containing today.
func CurrentPeriod(today time.Time) payroll.Period {
	today = clock.Today(today)
	if today.Day() <= 15 {
		return payroll.Period{Start: day(today, 1), End: day(today, 15)}
	}
	return payroll.Period{Start: day(today, 16), End: day(today, lastDayOfMonth(today))}
}

// HalfMonthPeriods lists the pay periods from the hire month through the
// period containing today, ordered by start then end, without duplicates.
// A nil hire date yields only the current period.
func HalfMonthPeriods(hireDate *time.Time, today time.Time) []payroll.Period {
	today = clock.Today(today)
	current := CurrentPeriod(today)
	if hireDate == nil {
		return []payroll.Period{current}
	}
	// DATE columns come back as UTC midnight; keep the calendar day as stored.
	y, m, d := hireDate.Date()
	hire := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	var periods []payroll.Period
	for month := day(hire, 1); !month.After(today); month = month.AddDate(0, 1, 0) {
		mid := day(month, 15)
		if inRange(mid, hire, today) {
			periods = append(periods, payroll.Period{Start: day(month, 1), End: mid})
		}
		secondEnd := day(month, lastDayOfMonth(month))
		if inRange(secondEnd, hire, today) {
			periods = append(periods, payroll.Period{Start: day(month, 16), End: secondEnd})
		}
	}
	periods = append(periods, current)

	sort.Slice(periods, func(i, j int) bool {
		if !periods[i].Start.Equal(periods[j].Start) {
			return periods[i].Start.Before(periods[j].Start)
		}
		return periods[i].End.Before(periods[j].End)
	})

	deduped := periods[:0]
	for i, p := range periods {
		if i > 0 && p.Equal(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped
}

// ParsePeriod reads the "YYYY-MM-DD_YYYY-MM-DD" form in loc.
func ParsePeriod(value string, loc *time.Location) (payroll.Period, error) {
	startStr, endStr, ok := strings.Cut(value, "_")
	if !ok {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	start, err := time.ParseInLocation(clock.DateLayout, startStr, loc)
	if err != nil {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	end, err := time.ParseInLocation(clock.DateLayout, endStr, loc)
	if err != nil {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	if end.Before(start) {
		return payroll.Period{}, payroll.ErrInvalidPeriod
	}
	return payroll.Period{Start: start, End: end}, nil
}

// SelectPeriod picks the requested period when it is one of the options,
// otherwise the latest option.
func SelectPeriod(options []payroll.Period, value string, loc *time.Location) payroll.Period {
	latest := options[len(options)-1]
	if value == "" {
		return latest
	}
	requested, err := ParsePeriod(value, loc)
	if err != nil {
		return latest
	}
	for _, p := range options {
		if p.Equal(requested) {
			return p
		}
	}
	return latest
}
