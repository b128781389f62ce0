package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly requires a staff session.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires a session linked to an employee record.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleEmployee {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}
		if employeeID, _ := claims["employee_id"].(string); employeeID == "" {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserID returns the user_id claim of the verified token.
func UserID(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	id, _ := claims["user_id"].(string)
	return id
}

// EmployeeID returns the employee_id claim of the verified token.
func EmployeeID(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	id, _ := claims["employee_id"].(string)
	return id
}
