package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table. Carts are
// anonymous; the token doubles as the primary key and is minted server-side.
type CartModel struct {
	Token     uuid.UUID       `gorm:"type:uuid;primary_key"`
	Lines     []CartLineModel `gorm:"foreignKey:CartToken;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartLineModel is the GORM-specific struct for the 'cart_lines' table.
// A line is unique per (cart, product, size).
type CartLineModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	CartToken uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_product_size"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product_size"`
	Size      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_product_size"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
