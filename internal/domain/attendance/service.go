package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Scan toggles check-in/check-out through the QR channel
	Scan(ctx context.Context, employeeID string) (ScanResponse, error)

	// CheckIn and CheckOut are the explicit self-service transitions
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// Toggle is the admin manual path; a completed day is a no-op
	Toggle(ctx context.Context, employeeID string) (ToggleResponse, error)

	// MarkStatus records a non-clocked status (e.g. fieldwork) for a day without time-in
	MarkStatus(ctx context.Context, req MarkStatusRequest) (AttendanceResponse, error)

	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	GetMyAttendance(ctx context.Context, employeeID string, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ExportAttendance renders the filtered log as an xlsx workbook
	ExportAttendance(ctx context.Context, filter AttendanceFilter) ([]byte, error)

	// IssueQRCode produces a short-lived check-in payload and its image
	IssueQRCode(ctx context.Context) (QRCodeResponse, error)
}
