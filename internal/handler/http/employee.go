package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	NextEmployeeID(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ArchiveEmployee(w http.ResponseWriter, r *http.Request)
	RecoverEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)

	// Self-service
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	UpdateMyContact(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

func employeeFilterFromQuery(r *http.Request) employee.EmployeeFilter {
	q := r.URL.Query()
	filter := employee.EmployeeFilter{
		Query:      q.Get("q"),
		Department: q.Get("dept"),
		Status:     q.Get("status"),
	}
	if archived, err := strconv.ParseBool(q.Get("archived")); err == nil {
		filter.Archived = archived
	}
	return filter
}

// ListEmployees handles GET /employees
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context(), employeeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments handles GET /employees/departments
func (h *employeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{}
	if archived, err := strconv.ParseBool(r.URL.Query().Get("archived")); err == nil {
		filter.Archived = archived
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.Departments)
}

// NextEmployeeID handles GET /employees/next-id
func (h *employeeHandlerImpl) NextEmployeeID(w http.ResponseWriter, r *http.Request) {
	id, err := h.employeeService.NextEmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"next_id": id})
}

// GetEmployee handles GET /employees/{id}
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee handles POST /employees
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee "+result.ID+" created successfully", result)
}

// UpdateEmployee handles PUT /employees/{id}
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// ArchiveEmployee handles POST /employees/{id}/archive
func (h *employeeHandlerImpl) ArchiveEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.ArchiveEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee archived successfully", nil)
}

// RecoverEmployee handles POST /employees/{id}/recover
func (h *employeeHandlerImpl) RecoverEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.RecoverEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee recovered successfully", nil)
}

// DeleteEmployee handles DELETE /employees/{id}
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted permanently", nil)
}

// ResetPassword handles POST /employees/{id}/reset-password
func (h *employeeHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.ResetPassword(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password reset to employee ID", nil)
}

// GetMyProfile handles GET /me
func (h *employeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetMyProfile(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMyContact handles PUT /me/contact
func (h *employeeHandlerImpl) UpdateMyContact(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMyContact decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateMyContact(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contact details updated", result)
}
