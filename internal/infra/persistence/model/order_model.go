package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Item
// snapshots are stored as a JSON document, mirroring the original schema
// where orders carried a frozen copy of the purchased cart lines.
type OrderModel struct {
	ID        int64          `gorm:"primary_key;autoIncrement"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Phone     string         `gorm:"type:varchar(50);not null"`
	Email     string         `gorm:"type:varchar(255);index"`
	Telegram  string         `gorm:"type:varchar(100)"`
	Address   string         `gorm:"type:text;not null"`
	Items     datatypes.JSON `gorm:"type:jsonb;not null"`
	Total     int64          `gorm:"not null"`
	Status    string         `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
