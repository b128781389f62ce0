package message

import "context"

type MessageService interface {
	// SendMessage files a message from the signed-in employee
	SendMessage(ctx context.Context, employeeID string, req SendMessageRequest) (MessageResponse, error)
	GetBoard(ctx context.Context) (BoardResponse, error)
	ListMessages(ctx context.Context, status string) ([]MessageResponse, error)

	// UpdateMessageStatus maps action "respond" to responded and "read" to read;
	// any other action leaves the status unchanged
	UpdateMessageStatus(ctx context.Context, id string, action string) (MessageResponse, error)

	CreateFAQ(ctx context.Context, req CreateFAQRequest) (FAQResponse, error)
	DeactivateFAQ(ctx context.Context, id string) error
	GetHelp(ctx context.Context) (HelpResponse, error)

	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	DeactivateAnnouncement(ctx context.Context, id string) error
	ListAnnouncements(ctx context.Context, limit int) ([]AnnouncementResponse, error)
}
