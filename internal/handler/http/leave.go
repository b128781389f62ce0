package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := l.leaveService.GetBalance(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	balance, err := l.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
