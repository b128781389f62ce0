package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	// Employee
	GetMyOverview(w http.ResponseWriter, r *http.Request)

	// Admin
	GetOverview(w http.ResponseWriter, r *http.Request)
	CreateObjective(w http.ResponseWriter, r *http.Request)
	UpdateObjective(w http.ResponseWriter, r *http.Request)
	CreateSummary(w http.ResponseWriter, r *http.Request)
	AddActivity(w http.ResponseWriter, r *http.Request)
	SetActivityDone(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// GetMyOverview handles GET /me/performance
func (h *performanceHandlerImpl) GetMyOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetOverview(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview handles GET /employees/{id}/performance
func (h *performanceHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetOverview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateObjective handles POST /performance/objectives
func (h *performanceHandlerImpl) CreateObjective(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateObjectiveRequest
	if !decodeJSON(w, r, &req, "CreateObjective") {
		return
	}

	result, err := h.performanceService.CreateObjective(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Objective created successfully", result)
}

// UpdateObjective handles PUT /performance/objectives/{id}
func (h *performanceHandlerImpl) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdateObjectiveRequest
	if !decodeJSON(w, r, &req, "UpdateObjective") {
		return
	}

	if err := h.performanceService.UpdateObjective(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Objective updated successfully", nil)
}

// CreateSummary handles POST /performance/summaries
func (h *performanceHandlerImpl) CreateSummary(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateSummaryRequest
	if !decodeJSON(w, r, &req, "CreateSummary") {
		return
	}

	result, err := h.performanceService.CreateSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Weekly summary created successfully", result)
}

// AddActivity handles POST /performance/summaries/{id}/activities
func (h *performanceHandlerImpl) AddActivity(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateActivityRequest
	if !decodeJSON(w, r, &req, "AddActivity") {
		return
	}

	result, err := h.performanceService.AddActivity(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity added successfully", result)
}

// SetActivityDone handles PUT /performance/activities/{id}
func (h *performanceHandlerImpl) SetActivityDone(w http.ResponseWriter, r *http.Request) {
	var req performance.SetActivityDoneRequest
	if !decodeJSON(w, r, &req, "SetActivityDone") {
		return
	}

	result, err := h.performanceService.SetActivityDone(r.Context(), chi.URLParam(r, "id"), req.IsDone)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity updated successfully", result)
}
