package service

import "context"

// AnalyticsEventMessage is the wire form of a tracking event handed to the
// publisher. The worker delivery decodes the same structure.
type AnalyticsEventMessage struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing.
	EventType  string         `json:"event_type"`
	EventData  map[string]any `json:"event_data,omitempty"`
	OccurredAt string         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing tracking events to a
// message queue for async persistence.
type EventPublisher interface {
	// PublishAnalyticsEvent publishes a tracking event for async processing.
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEventMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
