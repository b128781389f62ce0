package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee generates the next ID and provisions a login keyed by it
	CreateEmployee(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	NextEmployeeID(ctx context.Context) (string, error)

	// ArchiveEmployee and RecoverEmployee toggle the soft-delete flag
	ArchiveEmployee(ctx context.Context, id string) error
	RecoverEmployee(ctx context.Context, id string) error

	// DeleteEmployee removes the employee and its login permanently
	DeleteEmployee(ctx context.Context, id string) error

	// ResetPassword sets the login password back to the employee ID
	ResetPassword(ctx context.Context, id string) error

	GetMyProfile(ctx context.Context, userID string) (EmployeeResponse, error)
	UpdateMyContact(ctx context.Context, userID string, req UpdateContactRequest) (EmployeeResponse, error)
}
