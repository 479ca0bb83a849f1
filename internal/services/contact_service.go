package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}

type contactService struct {
	col repositories.Collection[models.ContactMessage]
}

func NewContactService(col repositories.Collection[models.ContactMessage]) ContactService {
	return &contactService{col: col}
}

// Submit appends a message to the inbox. Messages are never updated, so
// only created_at is stamped and status always starts unread.
func (s *contactService) Submit(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	const op = "ContactService.Submit"

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return models.ContactMessage{}, utils.E(utils.CodeInvalidArgument, op, "name, email, and message are required", nil)
	}

	msg.ID = uuid.NewString()
	msg.Status = models.StatusUnread
	msg.CreatedAt = nowUTC()

	if err := s.col.Insert(ctx, msg); err != nil {
		return models.ContactMessage{}, utils.E(utils.CodeInternal, op, "failed to store message", err)
	}
	return msg, nil
}

// List is the admin inbox read: always fresh, newest first.
func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "ContactService.List"

	out, err := s.col.List(ctx, listLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list messages", err)
	}
	if out == nil {
		out = []models.ContactMessage{}
	}
	return out, nil
}
