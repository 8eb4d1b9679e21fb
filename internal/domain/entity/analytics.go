package entity

import "time"

// AnalyticsEventType enumerates the tracked storefront events.
type AnalyticsEventType string

const (
	AnalyticsEventPageView  AnalyticsEventType = "page_view"
	AnalyticsEventAddToCart AnalyticsEventType = "add_to_cart"
)

// ParseAnalyticsEventType validates an event type label.
func ParseAnalyticsEventType(s string) (AnalyticsEventType, bool) {
	switch AnalyticsEventType(s) {
	case AnalyticsEventPageView, AnalyticsEventAddToCart:
		return AnalyticsEventType(s), true
	}

	return "", false
}

// AnalyticsEvent is a fire-and-forget tracking event. Ingestion never blocks
// a storefront action; events that cannot be delivered are dropped.
type AnalyticsEvent struct {
	ID         int64
	Type       AnalyticsEventType
	Data       map[string]any
	OccurredAt time.Time
}

// Statistics aggregates stored events over a reporting period for the
// admin dashboard cards.
type Statistics struct {
	PageViews   int64
	AddToCart   int64
	PeriodStart time.Time
	PeriodEnd   time.Time
}
