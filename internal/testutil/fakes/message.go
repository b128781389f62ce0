package fakes

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
)

type MessageRepository struct {
	mu       sync.Mutex
	Messages map[string]message.Message
	seq      int
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{Messages: map[string]message.Message{}}
}

func (r *MessageRepository) Create(ctx context.Context, msg message.Message) (message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.CreatedAt = time.Unix(int64(r.seq), 0)
	r.Messages[msg.ID] = msg
	return msg, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Messages[id]
	if !ok {
		return message.Message{}, message.ErrMessageNotFound
	}
	return m, nil
}

func (r *MessageRepository) List(ctx context.Context, status *message.Status) ([]message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []message.Message
	for _, m := range r.Messages {
		if status == nil || m.Status == *status {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id string, status message.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Messages[id]
	if !ok {
		return message.ErrMessageNotFound
	}
	m.Status = status
	r.Messages[id] = m
	return nil
}

func (r *MessageRepository) CountByStatus(ctx context.Context, status message.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.Messages {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

type FAQRepository struct {
	mu   sync.Mutex
	FAQs []message.FAQ
}

func (r *FAQRepository) Create(ctx context.Context, faq message.FAQ) (message.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	faq.ID = fmt.Sprintf("faq-%d", len(r.FAQs)+1)
	faq.IsActive = true
	r.FAQs = append(r.FAQs, faq)
	return faq, nil
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]message.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []message.FAQ
	for _, f := range r.FAQs {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FAQRepository) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.FAQs {
		if r.FAQs[i].ID == id {
			r.FAQs[i].IsActive = active
			return nil
		}
	}
	return message.ErrFAQNotFound
}

// AnnouncementRepository keeps insertion order; ListActive returns newest first.
type AnnouncementRepository struct {
	mu            sync.Mutex
	Announcements []message.Announcement
}

func (r *AnnouncementRepository) Create(ctx context.Context, ann message.Announcement) (message.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ann.ID = fmt.Sprintf("ann-%d", len(r.Announcements)+1)
	ann.IsActive = true
	ann.CreatedAt = time.Unix(int64(len(r.Announcements)+1), 0)
	r.Announcements = append(r.Announcements, ann)
	return ann, nil
}

func (r *AnnouncementRepository) ListActive(ctx context.Context, limit int) ([]message.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []message.Announcement
	for i := len(r.Announcements) - 1; i >= 0; i-- {
		if r.Announcements[i].IsActive {
			out = append(out, r.Announcements[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *AnnouncementRepository) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Announcements {
		if r.Announcements[i].ID == id {
			r.Announcements[i].IsActive = active
			return nil
		}
	}
	return message.ErrAnnouncementNotFound
}
