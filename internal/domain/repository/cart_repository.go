package repository

import (
	"context"
	"errors"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart exists for the given token.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists anonymous shopper carts keyed by their token.
type CartRepository interface {
	// FindByToken retrieves a cart with its lines.
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.Cart, error)

	// Save upserts a cart and replaces its line set wholesale. The line list
	// is small, so a full replace keeps the write path simple.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes a cart and its lines.
	Delete(ctx context.Context, token uuid.UUID) error
}

// FavoriteRepository persists the set of favorited product IDs per cart token.
type FavoriteRepository interface {
	// FindByToken returns the favorited product IDs for a shopper.
	FindByToken(ctx context.Context, token uuid.UUID) ([]uuid.UUID, error)

	// Add inserts a product into the shopper's favorite set; adding an
	// already-favorited product is a no-op.
	Add(ctx context.Context, token, productID uuid.UUID) error

	// Remove deletes a product from the shopper's favorite set.
	Remove(ctx context.Context, token, productID uuid.UUID) error
}
