package message

import "context"

type MessageRepository interface {
	Create(ctx context.Context, msg Message) (Message, error)
	GetByID(ctx context.Context, id string) (Message, error)
	List(ctx context.Context, status *Status) ([]Message, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type FAQRepository interface {
	Create(ctx context.Context, faq FAQ) (FAQ, error)
	ListActive(ctx context.Context) ([]FAQ, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, ann Announcement) (Announcement, error)
	ListActive(ctx context.Context, limit int) ([]Announcement, error)
	SetActive(ctx context.Context, id string, active bool) error
}
