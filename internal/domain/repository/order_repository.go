package repository

import (
	"context"
	"errors"

	"darkstore/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order and fills in its generated ID, status and
	// creation timestamp.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindAll retrieves all orders, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByEmail retrieves a shopper's past orders, newest first.
	FindByEmail(ctx context.Context, email string) ([]*entity.Order, error)

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// Delete removes an order.
	Delete(ctx context.Context, id int64) error
}
