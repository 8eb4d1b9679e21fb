package impl

import (
	"context"
	"log/slog"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/pkg/errors"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	messageRepo repository.MessageRepository
	notifier    service.OrderNotifier
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	messageRepo repository.MessageRepository,
	notifier service.OrderNotifier,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitMessage stores the message and notifies staff best-effort.
func (srv *contactService) SubmitMessage(ctx context.Context, input usecase.ContactMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to store contact message", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store contact message")
	}

	if err := srv.notifier.NotifyContactMessage(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to send message notification",
			slog.Any("error", err),
			slog.Int64("message_id", message.ID),
		)
	}

	return message, nil
}
