package impl

import (
	"context"
	"testing"
	"time"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/service"
	mockRepo "darkstore/internal/mocks/repository"
	mockSvc "darkstore/internal/mocks/service"
	"darkstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_TrackEvent_Publishes(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	ctx := context.Background()
	var published *service.AnalyticsEventMessage

	publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Run(func(_ context.Context, message *service.AnalyticsEventMessage) {
			published = message
		}).
		Return(nil)

	err := svc.TrackEvent(ctx, usecase.TrackEventInput{
		EventType: "page_view",
		EventData: map[string]any{"page": "/catalog"},
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "page_view", published.EventType)
	assert.Equal(t, "/catalog", published.EventData["page"])

	occurredAt, parseErr := time.Parse(time.RFC3339, published.OccurredAt)
	require.NoError(t, parseErr)
	assert.WithinDuration(t, time.Now().UTC(), occurredAt, time.Minute)
}

func TestAnalyticsService_TrackEvent_UnknownType(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	err := svc.TrackEvent(context.Background(), usecase.TrackEventInput{EventType: "mouse_moved"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAnalyticsService_TrackEvent_PublishError(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	ctx := context.Background()

	publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(errors.New("broker unavailable"))

	err := svc.TrackEvent(ctx, usecase.TrackEventInput{EventType: "add_to_cart"})

	assert.Error(t, err)
}

func TestAnalyticsService_RecordEvent_Persists(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	ctx := context.Background()
	occurredAt := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	var stored *entity.AnalyticsEvent

	analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(_ context.Context, event *entity.AnalyticsEvent) {
			stored = event
		}).
		Return(nil)

	err := svc.RecordEvent(ctx, &service.AnalyticsEventMessage{
		EventType:  "add_to_cart",
		EventData:  map[string]any{"product_id": "abc"},
		OccurredAt: occurredAt.Format(time.RFC3339),
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.AnalyticsEventAddToCart, stored.Type)
	assert.True(t, stored.OccurredAt.Equal(occurredAt))
}

func TestAnalyticsService_RecordEvent_BadTimestampFallsBackToNow(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	ctx := context.Background()
	var stored *entity.AnalyticsEvent

	analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(_ context.Context, event *entity.AnalyticsEvent) {
			stored = event
		}).
		Return(nil)

	err := svc.RecordEvent(ctx, &service.AnalyticsEventMessage{
		EventType:  "page_view",
		OccurredAt: "yesterday",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.WithinDuration(t, time.Now().UTC(), stored.OccurredAt, time.Minute)
}

func TestAnalyticsService_RecordEvent_UnknownType(t *testing.T) {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(analyticsRepo, publisher, discardLogger())

	err := svc.RecordEvent(context.Background(), &service.AnalyticsEventMessage{EventType: "mouse_moved"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
