package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	UpdateContact(ctx context.Context, id string, req UpdateContactRequest) error
	LinkUser(ctx context.Context, id string, userID string) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	ListDepartments(ctx context.Context, archived bool) ([]string, error)
	CountActive(ctx context.Context) (int64, error)

	// LockIDSequence serializes ID generation until the surrounding transaction ends.
	LockIDSequence(ctx context.Context) error
	MaxEmployeeNumber(ctx context.Context) (int, error)
}
