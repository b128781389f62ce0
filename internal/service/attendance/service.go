package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/config"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/qr"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/report"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock
	qr    config.QRConfig
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	qrConfig config.QRConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		qr:                   qrConfig,
	}
}

func (s *AttendanceServiceImpl) activeEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.IsArchived {
		return employee.Employee{}, employee.ErrEmployeeArchived
	}
	return emp, nil
}

// transition applies one check-in or check-out to today's record while
// holding its row lock. An empty want toggles based on the current state.
func (s *AttendanceServiceImpl) transition(ctx context.Context, emp employee.Employee, policy Policy, want attendance.Action) (attendance.Record, attendance.Action, error) {
	now := s.clock.Now()
	today := clock.Today(now)

	var (
		rec    attendance.Record
		action attendance.Action
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.AttendanceRepository.GetOrCreateForUpdate(ctx, emp.ID, today, attendance.StatusAbsent)
		if err != nil {
			return err
		}

		switch rec.State() {
		case attendance.StateAbsent:
			if want == attendance.ActionTimeOut {
				return attendance.ErrNotCheckedIn
			}
			rec.TimeIn = &now
			rec.Status = policy.StatusAt(now)
			action = attendance.ActionTimeIn
		case attendance.StateClockedIn:
			if want == attendance.ActionTimeIn {
				return attendance.ErrAlreadyCheckedIn
			}
			rec.TimeOut = &now
			rec.HoursWorked = policy.Hours(*rec.TimeIn, now)
			action = attendance.ActionTimeOut
		default:
			return attendance.ErrAlreadyCompleted
		}

		return s.AttendanceRepository.Update(ctx, rec)
	})
	if err != nil {
		return attendance.Record{}, attendance.ActionNone, err
	}

	name := emp.FullName()
	rec.EmployeeName = &name
	slog.Info("attendance recorded", "employee_id", emp.ID, "action", action, "status", rec.Status, "policy", policy.Name)
	return rec, action, nil
}

// Scan implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Scan(ctx context.Context, employeeID string) (attendance.ScanResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	rec, action, err := s.transition(ctx, emp, QRPolicy, "")
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	at := rec.TimeIn
	if action == attendance.ActionTimeOut {
		at = rec.TimeOut
	}
	return attendance.ScanResponse{
		Success: true,
		Action:  action,
		Time:    at.In(s.clock.Location()).Format("15:04"),
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	rec, _, err := s.transition(ctx, emp, QRPolicy, attendance.ActionTimeIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(rec, s.clock.Location()), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	rec, _, err := s.transition(ctx, emp, QRPolicy, attendance.ActionTimeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(rec, s.clock.Location()), nil
}

// Toggle implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Toggle(ctx context.Context, employeeID string) (attendance.ToggleResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ToggleResponse{}, err
	}
	loc := s.clock.Location()

	rec, action, err := s.transition(ctx, emp, ManualPolicy, "")
	if errors.Is(err, attendance.ErrAlreadyCompleted) {
		existing, getErr := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, clock.Today(s.clock.Now()))
		if getErr != nil {
			return attendance.ToggleResponse{}, fmt.Errorf("failed to get attendance: %w", getErr)
		}
		if existing == nil {
			return attendance.ToggleResponse{}, attendance.ErrAttendanceNotFound
		}
		name := emp.FullName()
		existing.EmployeeName = &name
		slog.Info("attendance toggle ignored, day already completed", "employee_id", emp.ID)
		return attendance.ToggleResponse{
			Action:  attendance.ActionNone,
			Message: fmt.Sprintf("%s has already timed out today.", emp.FullName()),
			Record:  attendance.NewAttendanceResponse(*existing, loc),
		}, nil
	}
	if err != nil {
		return attendance.ToggleResponse{}, err
	}

	message := fmt.Sprintf("Time in recorded for %s at %s.", emp.FullName(), rec.TimeIn.In(loc).Format("15:04"))
	if action == attendance.ActionTimeOut {
		message = fmt.Sprintf("Time out recorded for %s at %s.", emp.FullName(), rec.TimeOut.In(loc).Format("15:04"))
	}
	return attendance.ToggleResponse{
		Action:  action,
		Message: message,
		Record:  attendance.NewAttendanceResponse(rec, loc),
	}, nil
}

// MarkStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkStatus(ctx context.Context, req attendance.MarkStatusRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	loc := s.clock.Location()
	day, err := time.ParseInLocation(clock.DateLayout, req.Date, loc)
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidStatus
	}
	status := attendance.Status(req.Status)

	var rec attendance.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err = s.AttendanceRepository.GetOrCreateForUpdate(ctx, emp.ID, day, status)
		if err != nil {
			return err
		}
		if rec.TimeIn != nil {
			return attendance.ErrStatusLocked
		}
		rec.Status = status
		return s.AttendanceRepository.Update(ctx, rec)
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	name := emp.FullName()
	rec.EmployeeName = &name
	return attendance.NewAttendanceResponse(rec, loc), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, clock.Today(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	resp := attendance.NewAttendanceResponse(*rec, s.clock.Location())
	return &resp, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	loc := s.clock.Location()
	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		items = append(items, attendance.NewAttendanceResponse(r, loc))
	}
	return attendance.ListAttendanceResponse{
		Items:      items,
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	filter.EmployeeID = &employeeID
	return s.ListAttendance(ctx, filter)
}

// ExportAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	// Limit 0 lifts pagination.
	filter.Page, filter.Limit = 1, 0

	records, _, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	loc := s.clock.Location()
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		resp := attendance.NewAttendanceResponse(r, loc)
		name := ""
		if resp.EmployeeName != nil {
			name = *resp.EmployeeName
		}
		rows = append(rows, []interface{}{
			resp.EmployeeID, name, resp.Date, deref(resp.TimeIn), deref(resp.TimeOut),
			resp.Status, r.HoursWorked.InexactFloat64(),
		})
	}

	return report.Workbook(report.Sheet{
		Name:    "Attendance",
		Headers: []string{"Employee ID", "Name", "Date", "Time In", "Time Out", "Status", "Hours Worked"},
		Rows:    rows,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IssueQRCode implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) IssueQRCode(ctx context.Context) (attendance.QRCodeResponse, error) {
	payload := attendance.QRPayload{
		Token:     uuid.NewString(),
		ExpiresAt: s.clock.Now().Add(s.qr.TTL).Format(time.RFC3339),
		Lat:       s.qr.Latitude,
		Lng:       s.qr.Longitude,
		Radius:    s.qr.RadiusMeters,
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return attendance.QRCodeResponse{}, fmt.Errorf("failed to encode qr payload: %w", err)
	}
	png, err := qr.Encode(string(content), qr.DefaultSize)
	if err != nil {
		return attendance.QRCodeResponse{}, err
	}

	return attendance.QRCodeResponse{
		Payload: payload,
		Image:   qr.DataURI(png),
		PNG:     png,
	}, nil
}
