package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrEmployeeAccessRequired = errors.New("employee account required")
)
