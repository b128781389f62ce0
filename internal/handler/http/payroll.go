package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Employee
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
	GetMyPayslipPDF(w http.ResponseWriter, r *http.Request)

	// Admin
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetPayslipPDF(w http.ResponseWriter, r *http.Request)
	GetRegister(w http.ResponseWriter, r *http.Request)
	ExportRegister(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) payslip(w http.ResponseWriter, r *http.Request, employeeID string) {
	result, err := h.payrollService.GetPayslip(r.Context(), employeeID, r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) payslipPDF(w http.ResponseWriter, r *http.Request, employeeID string) {
	body, filename, err := h.payrollService.GetPayslipPDF(r.Context(), employeeID, r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", filename, body)
}

// GetMyPayslip handles GET /me/payslip?period=YYYY-MM-DD_YYYY-MM-DD
func (h *payrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	h.payslip(w, r, middleware.EmployeeID(r))
}

// GetMyPayslipPDF handles GET /me/payslip.pdf
func (h *payrollHandlerImpl) GetMyPayslipPDF(w http.ResponseWriter, r *http.Request) {
	h.payslipPDF(w, r, middleware.EmployeeID(r))
}

// GetPayslip handles GET /employees/{id}/payslip
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	h.payslip(w, r, chi.URLParam(r, "id"))
}

// GetPayslipPDF handles GET /employees/{id}/payslip.pdf
func (h *payrollHandlerImpl) GetPayslipPDF(w http.ResponseWriter, r *http.Request) {
	h.payslipPDF(w, r, chi.URLParam(r, "id"))
}

// GetRegister handles GET /payroll/register
func (h *payrollHandlerImpl) GetRegister(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetRegister(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportRegister handles GET /payroll/register/export
func (h *payrollHandlerImpl) ExportRegister(w http.ResponseWriter, r *http.Request) {
	body, filename, err := h.payrollService.ExportRegister(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, xlsxContentType, filename, body)
}
