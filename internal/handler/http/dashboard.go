package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetAdminDashboard returns headcount, pending messages and today's attendance mix
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
	// GetTimeTracking returns today's attendance tallies and recent logs
	GetTimeTracking(w http.ResponseWriter, r *http.Request)
	// GetEmployeeDashboard returns the signed-in employee's home page data
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetAdminDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTimeTracking handles GET /dashboard/time-tracking
func (h *dashboardHandlerImpl) GetTimeTracking(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTimeTracking(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeDashboard handles GET /me/dashboard
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
