package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceHandler interface {
	// Employee
	Scan(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)

	// Admin
	Toggle(w http.ResponseWriter, r *http.Request)
	MarkStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	QRCode(w http.ResponseWriter, r *http.Request)
	QRCodeImage(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	var filter attendance.AttendanceFilter
	q := r.URL.Query()

	if employeeID := q.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if date := q.Get("date"); date != "" {
		filter.StartDate = &date
		filter.EndDate = &date
	}
	if startDate := q.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := q.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}

	if p := q.Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := q.Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}
	return filter
}

// Scan handles POST /me/attendance/scan
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Scan(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn handles POST /me/attendance/check-in
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut handles POST /me/attendance/check-out
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// GetToday handles GET /me/attendance/today
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance handles GET /me/attendance
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetMyAttendance(r.Context(), middleware.EmployeeID(r), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, pageMeta(result.Page, result.Limit, result.TotalItems))
}

// Toggle handles POST /employees/{id}/attendance/toggle
func (h *attendanceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.attendanceService.Toggle(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkStatus handles POST /attendance/status
func (h *attendanceHandlerImpl) MarkStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance status recorded", result)
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, pageMeta(result.Page, result.Limit, result.TotalItems))
}

// Export handles GET /attendance/export
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	body, err := h.attendanceService.ExportAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, xlsxContentType, "attendance.xlsx", body)
}

// QRCode handles GET /attendance/qr
func (h *attendanceHandlerImpl) QRCode(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.IssueQRCode(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// QRCodeImage handles GET /attendance/qr.png
func (h *attendanceHandlerImpl) QRCodeImage(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.IssueQRCode(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	response.File(w, "image/png", "", result.PNG)
}

func pageMeta(page, limit int, total int64) *response.Meta {
	meta := &response.Meta{Page: page, Limit: limit, TotalItems: total}
	if limit > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}
