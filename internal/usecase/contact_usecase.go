package usecase

import (
	"context"

	"darkstore/internal/domain/entity"
)

// ContactMessageInput holds the contact form fields.
type ContactMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase handles contact form submissions.
type ContactUsecase interface {
	// SubmitMessage stores the message and notifies staff best-effort.
	SubmitMessage(ctx context.Context, input ContactMessageInput) (*entity.ContactMessage, error)
}
