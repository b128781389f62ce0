package leave

import "context"

type LeaveService interface {
	// GetBalance derives the current-year leave balance from attendance
	GetBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
