package payroll

import (
	"context"
)

type PayrollService interface {
	// GetPayslip computes the payslip preview; an empty or malformed
	// periodValue selects the latest applicable period
	GetPayslip(ctx context.Context, employeeID string, periodValue string) (PayslipResponse, error)
	GetPayslipPDF(ctx context.Context, employeeID string, periodValue string) ([]byte, string, error)

	GetRegister(ctx context.Context, periodValue string) (RegisterResponse, error)
	ExportRegister(ctx context.Context, periodValue string) ([]byte, string, error)
}
