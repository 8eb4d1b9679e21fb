package repository

import (
	"context"
	"time"

	"darkstore/internal/domain/entity"
)

// AnalyticsRepository persists tracking events and answers the admin
// statistics query.
type AnalyticsRepository interface {
	// Create persists a tracking event.
	Create(ctx context.Context, event *entity.AnalyticsEvent) error

	// CountByType counts stored events of one type inside [from, to).
	CountByType(ctx context.Context, eventType entity.AnalyticsEventType, from, to time.Time) (int64, error)
}
