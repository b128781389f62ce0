package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// latestAnnouncementCount is what the public landing page shows.
const latestAnnouncementCount = 3

type MessageHandler interface {
	// Employee
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetHelp(w http.ResponseWriter, r *http.Request)
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	LatestAnnouncements(w http.ResponseWriter, r *http.Request)

	// Admin
	GetBoard(w http.ResponseWriter, r *http.Request)
	ListMessages(w http.ResponseWriter, r *http.Request)
	UpdateMessageStatus(w http.ResponseWriter, r *http.Request)
	CreateFAQ(w http.ResponseWriter, r *http.Request)
	DeactivateFAQ(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	DeactivateAnnouncement(w http.ResponseWriter, r *http.Request)
}

type messageHandlerImpl struct {
	messageService message.MessageService
}

func NewMessageHandler(messageService message.MessageService) MessageHandler {
	return &messageHandlerImpl{messageService: messageService}
}

// SendMessage handles POST /me/messages
func (h *messageHandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req message.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SendMessage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.messageService.SendMessage(r.Context(), middleware.EmployeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent successfully", result)
}

// GetHelp handles GET /help/faqs
func (h *messageHandlerImpl) GetHelp(w http.ResponseWriter, r *http.Request) {
	result, err := h.messageService.GetHelp(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAnnouncements handles GET /announcements?limit=N
func (h *messageHandlerImpl) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	result, err := h.messageService.ListAnnouncements(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LatestAnnouncements handles GET /announcements/latest
func (h *messageHandlerImpl) LatestAnnouncements(w http.ResponseWriter, r *http.Request) {
	result, err := h.messageService.ListAnnouncements(r.Context(), latestAnnouncementCount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBoard handles GET /board
func (h *messageHandlerImpl) GetBoard(w http.ResponseWriter, r *http.Request) {
	result, err := h.messageService.GetBoard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMessages handles GET /messages?status=pending
func (h *messageHandlerImpl) ListMessages(w http.ResponseWriter, r *http.Request) {
	result, err := h.messageService.ListMessages(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMessageStatus handles POST /messages/{id}/status
func (h *messageHandlerImpl) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req message.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMessageStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.messageService.UpdateMessageStatus(r.Context(), id, req.Action)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message updated", result)
}

// CreateFAQ handles POST /faqs
func (h *messageHandlerImpl) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req message.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFAQ decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.messageService.CreateFAQ(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "FAQ created successfully", result)
}

// DeactivateFAQ handles DELETE /faqs/{id}
func (h *messageHandlerImpl) DeactivateFAQ(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.DeactivateFAQ(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "FAQ deactivated", nil)
}

// CreateAnnouncement handles POST /announcements
func (h *messageHandlerImpl) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req message.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.messageService.CreateAnnouncement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted successfully", result)
}

// DeactivateAnnouncement handles DELETE /announcements/{id}
func (h *messageHandlerImpl) DeactivateAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.DeactivateAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deactivated", nil)
}
