package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// Membership is per anonymous cart token.
type FavoriteModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	CartToken uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorite_token_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_token_product"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
