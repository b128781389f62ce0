package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrAlreadyCompleted   = errors.New("attendance for today is already completed")
	ErrNotCheckedIn       = errors.New("you have not checked in yet")
	ErrStatusLocked       = errors.New("status can only be set before time-in is recorded")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
