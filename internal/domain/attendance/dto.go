package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type Action string

const (
	ActionTimeIn  Action = "time_in"
	ActionTimeOut Action = "time_out"
	ActionNone    Action = "none"
)

// ScanResponse is the QR check-in channel result.
type ScanResponse struct {
	Success bool   `json:"success"`
	Action  Action `json:"action"`
	Time    string `json:"time"`
}

// ToggleResponse is the admin manual time-in/time-out result.
type ToggleResponse struct {
	Action  Action             `json:"action"`
	Message string             `json:"message"`
	Record  AttendanceResponse `json:"record"`
}

type MarkStatusRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=present late absent fieldwork health"`
}

func (r *MarkStatusRequest) Validate() error {
	return validator.Struct(r)
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	TimeIn       *string `json:"time_in,omitempty"`
	TimeOut      *string `json:"time_out,omitempty"`
	Status       string  `json:"status"`
	State        string  `json:"state"`
	HoursWorked  string  `json:"hours_worked"`
}

func hhmm(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04")
	return &s
}

// NewAttendanceResponse renders wall-clock times in loc.
func NewAttendanceResponse(r Record, loc *time.Location) AttendanceResponse {
	return AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date.Format("2006-01-02"),
		TimeIn:       hhmm(r.TimeIn, loc),
		TimeOut:      hhmm(r.TimeOut, loc),
		Status:       string(r.Status),
		State:        r.State().String(),
		HoursWorked:  r.HoursWorked.StringFixed(2),
	}
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool
	if f.StartDate != nil {
		if start, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if end, endOK = validator.IsValidDate(*f.EndDate); !endOK {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if f.Status != nil && !Status(*f.Status).Valid() {
		errs.Add("status", "status must be one of present, late, absent, fieldwork, health")
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	return errs.Err()
}

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	TotalItems int64                `json:"total_items"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

// QRPayload is encoded into the admin check-in QR image.
type QRPayload struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Radius    int     `json:"radius"`
}

type QRCodeResponse struct {
	Payload QRPayload `json:"payload"`
	Image   string    `json:"image"`
	PNG     []byte    `json:"-"`
}
