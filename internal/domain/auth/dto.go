package auth

import "github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r)
}

type TokenResponse struct {
	AccessToken          string  `json:"access_token"`
	AccessTokenExpiresIn int64   `json:"access_token_expires_in"`
	Role                 string  `json:"role"`
	EmployeeID           *string `json:"employee_id,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword  string `json:"old_password" validate:"required"`
	NewPassword1 string `json:"new_password1" validate:"required,min=8,max=128"`
	NewPassword2 string `json:"new_password2" validate:"required"`
}

func (r *ChangePasswordRequest) Validate() error {
	return validator.Struct(r)
}
