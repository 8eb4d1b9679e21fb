package usecase

import (
	"context"
	"time"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminSession is returned by a successful login.
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Dashboard bundles everything the admin panel loads in one request.
type Dashboard struct {
	Orders   []*entity.Order          `json:"orders"`
	Messages []*entity.ContactMessage `json:"messages"`
	Products []*entity.Product        `json:"products"`
}

// ProductInput holds the editable product fields for create and update.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       int64    `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	// Nil means the flag was omitted from the request and the product is
	// treated as in stock. A submitted false marks it sold out.
	InStock *bool `json:"in_stock"`
}

// AdminUsecase covers the password-gated management panel: authentication,
// the combined dashboard, and order, message and product management.
type AdminUsecase interface {
	// Login verifies the panel password and issues an expiring session token.
	Login(ctx context.Context, password string) (*AdminSession, error)

	// GetDashboard loads orders, messages and products in one call.
	GetDashboard(ctx context.Context) (*Dashboard, error)

	// UpdateOrderStatus moves an order to the given status. The legacy
	// "completed" label is accepted as an alias of delivered.
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error

	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, orderID int64) error

	// DeleteMessage removes a contact message permanently.
	DeleteMessage(ctx context.Context, messageID int64) error

	// CreateProduct adds a catalog item.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a catalog item's editable fields.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// GetStatistics aggregates tracking events over the reporting period.
	GetStatistics(ctx context.Context, from, to time.Time) (*entity.Statistics, error)
}
