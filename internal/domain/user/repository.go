package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdateProfile(ctx context.Context, id string, firstName, lastName string, email *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
