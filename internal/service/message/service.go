package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
)

type MessageServiceImpl struct {
	message.MessageRepository
	faqRepo          message.FAQRepository
	announcementRepo message.AnnouncementRepository
	employeeRepo     employee.EmployeeRepository
	clock            clock.Clock
}

func NewMessageService(
	messageRepo message.MessageRepository,
	faqRepo message.FAQRepository,
	announcementRepo message.AnnouncementRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) message.MessageService {
	return &MessageServiceImpl{
		MessageRepository: messageRepo,
		faqRepo:           faqRepo,
		announcementRepo:  announcementRepo,
		employeeRepo:      employeeRepo,
		clock:             clk,
	}
}

// SendMessage fills a blank name or email from the sender's employee record.
func (s *MessageServiceImpl) SendMessage(ctx context.Context, employeeID string, req message.SendMessageRequest) (message.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return message.MessageResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return message.MessageResponse{}, err
	}

	msg := message.Message{
		EmployeeID:  &emp.ID,
		Name:        req.Name,
		Email:       req.Email,
		MessageType: req.MessageType,
		Text:        req.Text,
		Status:      message.StatusPending,
	}
	if msg.Name == "" {
		msg.Name = emp.FullName()
	}
	if msg.Email == "" {
		msg.Email = emp.Email
	}

	created, err := s.MessageRepository.Create(ctx, msg)
	if err != nil {
		return message.MessageResponse{}, fmt.Errorf("failed to create message: %w", err)
	}
	return message.NewMessageResponse(created), nil
}

func (s *MessageServiceImpl) GetBoard(ctx context.Context) (message.BoardResponse, error) {
	msgs, err := s.ListMessages(ctx, "")
	if err != nil {
		return message.BoardResponse{}, err
	}

	faqs, err := s.faqRepo.ListActive(ctx)
	if err != nil {
		return message.BoardResponse{}, fmt.Errorf("failed to list faqs: %w", err)
	}

	anns, err := s.ListAnnouncements(ctx, 0)
	if err != nil {
		return message.BoardResponse{}, err
	}

	board := message.BoardResponse{
		Messages:      msgs,
		FAQs:          make([]message.FAQResponse, 0, len(faqs)),
		Announcements: anns,
	}
	for _, f := range faqs {
		board.FAQs = append(board.FAQs, message.NewFAQResponse(f))
	}
	return board, nil
}

// ListMessages returns every message when status is empty or unknown.
func (s *MessageServiceImpl) ListMessages(ctx context.Context, status string) ([]message.MessageResponse, error) {
	var filter *message.Status
	switch st := message.Status(status); st {
	case message.StatusPending, message.StatusResponded, message.StatusRead:
		filter = &st
	}

	msgs, err := s.MessageRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	resp := make([]message.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, message.NewMessageResponse(m))
	}
	return resp, nil
}

func (s *MessageServiceImpl) UpdateMessageStatus(ctx context.Context, id string, action string) (message.MessageResponse, error) {
	msg, err := s.MessageRepository.GetByID(ctx, id)
	if err != nil {
		return message.MessageResponse{}, err
	}

	var next message.Status
	switch action {
	case "respond":
		next = message.StatusResponded
	case "read":
		next = message.StatusRead
	default:
		slog.Debug("message status action ignored", "id", id, "action", action)
		return message.NewMessageResponse(msg), nil
	}

	if err := s.MessageRepository.UpdateStatus(ctx, id, next); err != nil {
		return message.MessageResponse{}, fmt.Errorf("failed to update message status: %w", err)
	}
	msg.Status = next
	return message.NewMessageResponse(msg), nil
}

func (s *MessageServiceImpl) CreateFAQ(ctx context.Context, req message.CreateFAQRequest) (message.FAQResponse, error) {
	if err := req.Validate(); err != nil {
		return message.FAQResponse{}, err
	}

	faq, err := s.faqRepo.Create(ctx, message.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: message.FAQCategory(req.Category),
		IsActive: true,
	})
	if err != nil {
		return message.FAQResponse{}, fmt.Errorf("failed to create faq: %w", err)
	}
	return message.NewFAQResponse(faq), nil
}

func (s *MessageServiceImpl) DeactivateFAQ(ctx context.Context, id string) error {
	return s.faqRepo.SetActive(ctx, id, false)
}

// GetHelp groups active FAQs in the fixed category order, omitting empty groups.
func (s *MessageServiceImpl) GetHelp(ctx context.Context) (message.HelpResponse, error) {
	faqs, err := s.faqRepo.ListActive(ctx)
	if err != nil {
		return message.HelpResponse{}, fmt.Errorf("failed to list faqs: %w", err)
	}

	byCategory := make(map[message.FAQCategory][]message.FAQResponse)
	for _, f := range faqs {
		byCategory[f.Category] = append(byCategory[f.Category], message.NewFAQResponse(f))
	}

	help := message.HelpResponse{Categories: []message.FAQGroup{}}
	for _, c := range message.FAQCategories {
		if len(byCategory[c]) == 0 {
			continue
		}
		help.Categories = append(help.Categories, message.FAQGroup{Category: string(c), FAQs: byCategory[c]})
	}
	return help, nil
}

func (s *MessageServiceImpl) CreateAnnouncement(ctx context.Context, req message.CreateAnnouncementRequest) (message.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return message.AnnouncementResponse{}, err
	}

	ann := message.Announcement{Title: req.Title, Body: req.Body, IsActive: true}
	if req.Date != "" {
		d, err := time.ParseInLocation(clock.DateLayout, req.Date, s.clock.Location())
		if err != nil {
			return message.AnnouncementResponse{}, fmt.Errorf("failed to parse announcement date: %w", err)
		}
		ann.Date = &d
	}

	created, err := s.announcementRepo.Create(ctx, ann)
	if err != nil {
		return message.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return message.NewAnnouncementResponse(created), nil
}

func (s *MessageServiceImpl) DeactivateAnnouncement(ctx context.Context, id string) error {
	return s.announcementRepo.SetActive(ctx, id, false)
}

// ListAnnouncements returns active announcements newest first; limit <= 0 means all.
func (s *MessageServiceImpl) ListAnnouncements(ctx context.Context, limit int) ([]message.AnnouncementResponse, error) {
	anns, err := s.announcementRepo.ListActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	resp := make([]message.AnnouncementResponse, 0, len(anns))
	for _, a := range anns {
		resp = append(resp, message.NewAnnouncementResponse(a))
	}
	return resp, nil
}
