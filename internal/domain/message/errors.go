package message

import "errors"

var (
	ErrMessageNotFound      = errors.New("message not found")
	ErrFAQNotFound          = errors.New("faq not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
