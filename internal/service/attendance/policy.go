package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// Policy holds the lateness and worked-time rules of one entry point.
// Offsets are measured from local midnight of the attendance date.
type Policy struct {
	Name       string
	LateAfter  time.Duration
	Clamp      bool
	ClampStart time.Duration
	ClampEnd   time.Duration
}

var (
	// QRPolicy applies to employee self-service: QR scan and explicit check-in/out.
	QRPolicy = Policy{
		Name:      "qr",
		LateAfter: 8*time.Hour + 15*time.Minute,
	}

	// ManualPolicy applies to the admin manual toggle.
	ManualPolicy = Policy{
		Name:       "manual",
		LateAfter:  8 * time.Hour,
		Clamp:      true,
		ClampStart: 8 * time.Hour,
		ClampEnd:   17 * time.Hour,
	}
)

// StatusAt is Late when timeIn is strictly after the cutoff, otherwise Present.
func (p Policy) StatusAt(timeIn time.Time) attendance.Status {
	cutoff := clock.Today(timeIn).Add(p.LateAfter)
	if timeIn.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// Hours returns the worked hours between in and out rounded to 2 dp, never negative.
func (p Policy) Hours(in, out time.Time) decimal.Decimal {
	if p.Clamp {
		midnight := clock.Today(in)
		if start := midnight.Add(p.ClampStart); in.Before(start) {
			in = start
		}
		if end := midnight.Add(p.ClampEnd); out.After(end) {
			out = end
		}
	}

	elapsed := out.Sub(in)
	if elapsed <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(elapsed / time.Second)).
		Div(decimal.NewFromInt(3600)).
		Round(2)
}
