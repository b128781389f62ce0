package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Staff account, manages records
	RoleEmployee Role = "employee" // Self-service account linked to an employee
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        *string
	IsStaff      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID *string
}

// Role derives the session role from the staff flag.
func (u *User) Role() Role {
	if u.IsStaff {
		return RoleAdmin
	}
	return RoleEmployee
}
