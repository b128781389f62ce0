package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========================================
// MESSAGES
// ========================================

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) message.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

const messageColumns = `id, employee_id, name, email, message_type, text, status, created_at`

func scanMessage(row pgx.Row) (message.Message, error) {
	var m message.Message
	err := row.Scan(&m.ID, &m.EmployeeID, &m.Name, &m.Email, &m.MessageType, &m.Text, &m.Status, &m.CreatedAt)
	return m, err
}

func (r *messageRepositoryImpl) Create(ctx context.Context, msg message.Message) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO messages (employee_id, name, email, message_type, text, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + messageColumns

	created, err := scanMessage(q.QueryRow(ctx, query,
		msg.EmployeeID, msg.Name, msg.Email, msg.MessageType, msg.Text, msg.Status))
	if err != nil {
		return message.Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return created, nil
}

func (r *messageRepositoryImpl) GetByID(ctx context.Context, id string) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMessage(q.QueryRow(ctx, "SELECT "+messageColumns+" FROM messages WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return message.Message{}, message.ErrMessageNotFound
		}
		return message.Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// List returns messages newest first, optionally narrowed to one status.
func (r *messageRepositoryImpl) List(ctx context.Context, status *message.Status) ([]message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ($1::varchar IS NULL OR status = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}

func (r *messageRepositoryImpl) UpdateStatus(ctx context.Context, id string, status message.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}
	return nil
}

func (r *messageRepositoryImpl) CountByStatus(ctx context.Context, status message.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

// ========================================
// FAQS
// ========================================

type faqRepositoryImpl struct {
	db *database.DB
}

func NewFAQRepository(db *database.DB) message.FAQRepository {
	return &faqRepositoryImpl{db: db}
}

func (r *faqRepositoryImpl) Create(ctx context.Context, faq message.FAQ) (message.FAQ, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO faqs (question, answer, category, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := faq
	if err := q.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Category, faq.IsActive).Scan(&created.ID, &created.CreatedAt); err != nil {
		return message.FAQ{}, fmt.Errorf("failed to create faq: %w", err)
	}
	return created, nil
}

func (r *faqRepositoryImpl) ListActive(ctx context.Context) ([]message.FAQ, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, question, answer, category, is_active, created_at
		FROM faqs
		WHERE is_active = TRUE
		ORDER BY category ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []message.FAQ
	for rows.Next() {
		var f message.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return faqs, nil
}

func (r *faqRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE faqs SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return message.ErrFAQNotFound
	}
	return nil
}

// ========================================
// ANNOUNCEMENTS
// ========================================

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) message.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

func (r *announcementRepositoryImpl) Create(ctx context.Context, ann message.Announcement) (message.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, body, date, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := ann
	if err := q.QueryRow(ctx, query, ann.Title, ann.Body, ann.Date, ann.IsActive).Scan(&created.ID, &created.CreatedAt); err != nil {
		return message.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return created, nil
}

// ListActive returns active announcements newest first. A limit of zero or
// less returns all of them.
func (r *announcementRepositoryImpl) ListActive(ctx context.Context, limit int) ([]message.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, body, date, is_active, created_at
		FROM announcements
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var anns []message.Announcement
	for rows.Next() {
		var a message.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Date, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		anns = append(anns, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return anns, nil
}

func (r *announcementRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE announcements SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return message.ErrAnnouncementNotFound
	}
	return nil
}
