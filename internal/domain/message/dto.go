package message

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	Name        string `json:"name" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	MessageType string `json:"message_type" validate:"max=50"`
	Text        string `json:"text" validate:"required"`
}

func (r *SendMessageRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Text = strings.TrimSpace(r.Text)
	return validator.Struct(r)
}

type UpdateStatusRequest struct {
	Action string `json:"action"`
}

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,max=255"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof='Leave Policies' Payroll Benefits General"`
}

func (r *CreateFAQRequest) Validate() error {
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
	if r.Category == "" {
		r.Category = string(CategoryGeneral)
	}
	return validator.Struct(r)
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	r.Date = strings.TrimSpace(r.Date)
	return validator.Struct(r)
}

type MessageResponse struct {
	ID          string  `json:"id"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	MessageType string  `json:"message_type"`
	Text        string  `json:"text"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

func NewMessageResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		Name:        m.Name,
		Email:       m.Email,
		MessageType: m.MessageType,
		Text:        m.Text,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func NewFAQResponse(f FAQ) FAQResponse {
	return FAQResponse{ID: f.ID, Question: f.Question, Answer: f.Answer, Category: string(f.Category)}
}

// HelpResponse groups active FAQs by category for the help page.
type HelpResponse struct {
	Categories []FAQGroup `json:"categories"`
}

type FAQGroup struct {
	Category string        `json:"category"`
	FAQs     []FAQResponse `json:"faqs"`
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Date      *string `json:"date,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func NewAnnouncementResponse(a Announcement) AnnouncementResponse {
	resp := AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.Date != nil {
		s := a.Date.Format("2006-01-02")
		resp.Date = &s
	}
	return resp
}

// BoardResponse is the admin message board.
type BoardResponse struct {
	Messages      []MessageResponse      `json:"messages"`
	FAQs          []FAQResponse          `json:"faqs"`
	Announcements []AnnouncementResponse `json:"announcements"`
}
