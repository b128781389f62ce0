package auth

import (
	"context"
)

type AuthService interface {
	AdminLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)
	EmployeeLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// EnsureAdmin creates the staff account when it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) (created bool, err error)
}
