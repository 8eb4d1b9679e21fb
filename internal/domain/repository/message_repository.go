package repository

import (
	"context"
	"errors"

	"darkstore/internal/domain/entity"
)

// ErrMessageNotFound is returned when a contact message does not exist.
var ErrMessageNotFound = errors.New("contact message not found")

// MessageRepository defines the standard operations for contact message persistence.
type MessageRepository interface {
	// Create persists a new contact message and fills in its generated ID
	// and creation timestamp.
	Create(ctx context.Context, message *entity.ContactMessage) error

	// FindAll retrieves all messages, newest first.
	FindAll(ctx context.Context) ([]*entity.ContactMessage, error)

	// Delete removes a message.
	Delete(ctx context.Context, id int64) error
}
