package model

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyticsEventModel is the GORM-specific struct for the 'analytics_events'
// table, populated by the analytics worker.
type AnalyticsEventModel struct {
	ID         int64          `gorm:"primary_key;autoIncrement"`
	EventType  string         `gorm:"type:varchar(50);not null;index:idx_analytics_type_time"`
	EventData  datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"not null;index:idx_analytics_type_time"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
