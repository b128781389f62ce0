package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Salary grade handlers
	UpsertGrade(w http.ResponseWriter, r *http.Request)
	GetGrade(w http.ResponseWriter, r *http.Request)
	ListGrades(w http.ResponseWriter, r *http.Request)
	DeleteGrade(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

func gradeParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	g, err := strconv.Atoi(chi.URLParam(r, "grade"))
	if err != nil {
		response.BadRequest(w, "Salary grade must be a number", nil)
		return 0, false
	}
	return g, true
}

// ==================== SALARY GRADE HANDLERS ====================

func (h *masterHandlerImpl) UpsertGrade(w http.ResponseWriter, r *http.Request) {
	var req grade.UpsertGradeRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// A path grade wins over the body
	if chi.URLParam(r, "grade") != "" {
		g, ok := gradeParam(w, r)
		if !ok {
			return
		}
		req.Grade = g
	}

	result, err := h.masterService.UpsertGrade(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary grade saved successfully", result)
}

func (h *masterHandlerImpl) GetGrade(w http.ResponseWriter, r *http.Request) {
	g, ok := gradeParam(w, r)
	if !ok {
		return
	}

	result, err := h.masterService.GetGrade(r.Context(), g)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListGrades(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListGrades(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	g, ok := gradeParam(w, r)
	if !ok {
		return
	}

	if err := h.masterService.DeleteGrade(r.Context(), g); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary grade deleted successfully", nil)
}
