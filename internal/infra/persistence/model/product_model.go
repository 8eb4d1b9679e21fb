// Package model contains GORM-specific persistence structs. They are mapped
// to and from pure domain entities at the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Price       int64          `gorm:"not null;check:price >= 0"`
	Category    string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Sizes       datatypes.JSON `gorm:"type:jsonb"` // Ordered list of size labels.
	Image       string         `gorm:"type:text"`
	Images      datatypes.JSON `gorm:"type:jsonb"`
	// Pointer keeps an explicit false in the INSERT; with a plain bool GORM
	// drops the zero value and the column default wins.
	InStock     *bool          `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
