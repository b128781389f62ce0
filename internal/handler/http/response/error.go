package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidAdminCredentials),
		errors.Is(err, auth.ErrInvalidEmployeeCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOldPasswordIncorrect),
		errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, err.Error(), nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrEmployeeAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrNoLinkedUser),
		errors.Is(err, employee.ErrEmployeeArchived),
		errors.Is(err, employee.ErrEmployeeNotArchive):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCompleted),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrStatusLocked):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Payroll and salary grade errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, grade.ErrGradeNotFound):
		NotFound(w, "Salary grade not found")

	// Board and performance errors
	case errors.Is(err, message.ErrMessageNotFound):
		NotFound(w, "Message not found")
	case errors.Is(err, message.ErrFAQNotFound):
		NotFound(w, "FAQ not found")
	case errors.Is(err, message.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, performance.ErrObjectiveNotFound),
		errors.Is(err, performance.ErrSummaryNotFound),
		errors.Is(err, performance.ErrActivityNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
