package postgres

import (
	"context"
	"encoding/json"
	"time"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Create persists a tracking event.
func (repo *analyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	eventM, err := fromAnalyticsDomain(event)
	if err != nil {
		return errors.Wrap(err, "failed to serialize event data")
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics event")
	}

	event.ID = eventM.ID

	return nil
}

// CountByType counts stored events of one type inside [from, to).
func (repo *analyticsRepository) CountByType(ctx context.Context, eventType entity.AnalyticsEventType, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AnalyticsEventModel{}).
		Where("event_type = ? AND occurred_at >= ? AND occurred_at < ?", string(eventType), from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count analytics events")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromAnalyticsDomain converts a domain AnalyticsEvent entity to a GORM AnalyticsEventModel.
func fromAnalyticsDomain(data *entity.AnalyticsEvent) (*model.AnalyticsEventModel, error) {
	if data == nil {
		return nil, nil
	}

	eventData, err := json.Marshal(data.Data)
	if err != nil {
		return nil, err
	}

	return &model.AnalyticsEventModel{
		ID:         data.ID,
		EventType:  string(data.Type),
		EventData:  datatypes.JSON(eventData),
		OccurredAt: data.OccurredAt,
	}, nil
}
