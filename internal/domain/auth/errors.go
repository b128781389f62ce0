package auth

import "errors"

var (
	ErrInvalidAdminCredentials    = errors.New("invalid credentials or you are not authorized as an admin")
	ErrInvalidEmployeeCredentials = errors.New("invalid credentials or account is not an employee account")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrOldPasswordIncorrect       = errors.New("old password is incorrect")
	ErrPasswordMismatch           = errors.New("new passwords do not match")
)
