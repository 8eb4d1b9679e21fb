package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutSessionModel is the GORM-specific struct for the
// 'checkout_sessions' table. One row per cart at most.
type CheckoutSessionModel struct {
	CartToken     uuid.UUID `gorm:"type:uuid;primary_key"`
	Step          string    `gorm:"type:varchar(20);not null"`
	Name          string    `gorm:"type:varchar(255)"`
	Email         string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Telegram      string    `gorm:"type:varchar(100)"`
	City          string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:text"`
	FailureReason string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutSessionModel) TableName() string {
	return "checkout_sessions"
}
