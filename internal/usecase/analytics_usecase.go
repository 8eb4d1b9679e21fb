package usecase

import (
	"context"

	"darkstore/internal/domain/service"
)

// TrackEventInput is a raw tracking event from the storefront client.
type TrackEventInput struct {
	EventType string         `json:"event_type" validate:"required"`
	EventData map[string]any `json:"event_data"`
}

// AnalyticsUsecase handles the tracking pipeline. Publishing is fire and
// forget from the shopper's point of view; the worker persists events.
type AnalyticsUsecase interface {
	// TrackEvent validates and publishes a tracking event for async
	// persistence.
	TrackEvent(ctx context.Context, input TrackEventInput) error

	// RecordEvent persists a published event. Called by the worker delivery
	// when a push message arrives.
	RecordEvent(ctx context.Context, message *service.AnalyticsEventMessage) error
}
