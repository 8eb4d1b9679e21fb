package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface. TrackEvent runs
// in the storefront process and publishes; RecordEvent runs in the worker and
// persists.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackEvent validates and publishes a tracking event for async persistence.
func (srv *analyticsService) TrackEvent(ctx context.Context, input usecase.TrackEventInput) error {
	eventType, ok := entity.ParseAnalyticsEventType(input.EventType)
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown event type")
	}

	message := &service.AnalyticsEventMessage{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  string(eventType),
		EventData:  input.EventData,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishAnalyticsEvent(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to publish tracking event",
			slog.Any("error", err),
			slog.String("event_type", input.EventType),
		)

		return errors.Wrap(err, "failed to publish tracking event")
	}

	return nil
}

// RecordEvent persists a published event.
func (srv *analyticsService) RecordEvent(ctx context.Context, message *service.AnalyticsEventMessage) error {
	eventType, ok := entity.ParseAnalyticsEventType(message.EventType)
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown event type")
	}

	occurredAt, err := time.Parse(time.RFC3339, message.OccurredAt)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	event := &entity.AnalyticsEvent{
		Type:       eventType,
		Data:       message.EventData,
		OccurredAt: occurredAt,
	}

	if err := srv.analyticsRepo.Create(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to persist tracking event",
			slog.Any("error", err),
			slog.String("event_type", message.EventType),
		)

		return errors.Wrap(err, "failed to persist tracking event")
	}

	return nil
}
