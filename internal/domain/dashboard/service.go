package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
	GetTimeTracking(ctx context.Context) (*TimeTrackingResponse, error)
	GetEmployeeDashboard(ctx context.Context, employeeID string) (*EmployeeDashboardResponse, error)
}
