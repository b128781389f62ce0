package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent   Status = "present"
	StatusLate      Status = "late"
	StatusAbsent    Status = "absent"
	StatusFieldwork Status = "fieldwork"
	StatusHealth    Status = "health"
)

var AllStatuses = []Status{StatusPresent, StatusLate, StatusAbsent, StatusFieldwork, StatusHealth}

// PayableStatuses count toward worked and paid days. Absent never does.
var PayableStatuses = []Status{StatusPresent, StatusLate, StatusFieldwork, StatusHealth}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) Payable() bool {
	for _, st := range PayableStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// State is the per-day lifecycle position of a record.
type State int

const (
	StateAbsent State = iota
	StateClockedIn
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateClockedIn:
		return "clocked_in"
	case StateCompleted:
		return "completed"
	default:
		return "absent"
	}
}

// Record is the single attendance row of one employee on one calendar date.
type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	Status      Status
	HoursWorked decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeName *string
}

func (r *Record) State() State {
	switch {
	case r == nil || r.TimeIn == nil:
		return StateAbsent
	case r.TimeOut == nil:
		return StateClockedIn
	default:
		return StateCompleted
	}
}
